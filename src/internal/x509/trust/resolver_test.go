// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509trust_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/native-certs/src/internal/testutil"
	x509trust "github.com/H0llyW00dzZ/native-certs/src/internal/x509/trust"
)

// record is one (certificate, verdict) pair in a fake domain.
// A nil verdict means the domain holds no explicit setting.
type record struct {
	der     []byte
	verdict *x509trust.Verdict
}

func verdict(v x509trust.Verdict) *x509trust.Verdict { return &v }

type fakeDomain struct {
	records  []record
	queryErr error
}

func (f *fakeDomain) Certificates() iter.Seq[x509trust.Certificate] {
	return func(yield func(x509trust.Certificate) bool) {
		for _, r := range f.records {
			if !yield(x509trust.DER(r.der)) {
				return
			}
		}
	}
}

func (f *fakeDomain) TLSVerdict(cert x509trust.Certificate) (x509trust.Verdict, bool, error) {
	if f.queryErr != nil {
		return x509trust.Invalid, false, f.queryErr
	}
	for _, r := range f.records {
		if bytes.Equal(r.der, cert.DER()) {
			if r.verdict == nil {
				return x509trust.Invalid, false, nil
			}
			return *r.verdict, true, nil
		}
	}
	return x509trust.Invalid, false, nil
}

type fakeStore struct {
	domains map[x509trust.Domain]*fakeDomain
	openErr map[x509trust.Domain]error
	opened  []x509trust.Domain
}

func (s *fakeStore) Open(d x509trust.Domain) (x509trust.Settings, error) {
	s.opened = append(s.opened, d)
	if err := s.openErr[d]; err != nil {
		return nil, err
	}
	if dom, ok := s.domains[d]; ok {
		return dom, nil
	}
	return &fakeDomain{}, nil
}

// blocks splits a bundle into its PEM blocks, sorted for order-insensitive
// comparison.
func blocks(bundle []byte) []string {
	var out []string
	for _, part := range strings.SplitAfter(string(bundle), "-----END CERTIFICATE-----\n") {
		if part != "" {
			out = append(out, part)
		}
	}
	slices.Sort(out)
	return out
}

// decodeBodies extracts the DER bodies of every block in bundle.
func decodeBodies(t *testing.T, bundle []byte) [][]byte {
	t.Helper()
	var out [][]byte
	for _, block := range blocks(bundle) {
		lines := strings.Split(strings.TrimSuffix(block, "\n"), "\n")
		require.Len(t, lines, 3)
		der, err := base64.StdEncoding.DecodeString(lines[1])
		require.NoError(t, err)
		out = append(out, der)
	}
	return out
}

func TestDomains_Order(t *testing.T) {
	assert.Equal(t, []x509trust.Domain{x509trust.User, x509trust.Admin, x509trust.System}, x509trust.Domains())
	assert.Equal(t, []string{"user", "admin", "system"}, []string{
		x509trust.User.String(), x509trust.Admin.String(), x509trust.System.String(),
	})
}

func TestResolver_OpensDomainsInPrecedenceOrder(t *testing.T) {
	store := &fakeStore{}
	_, err := x509trust.New(store).Resolve()
	require.NoError(t, err)
	assert.Equal(t, x509trust.Domains(), store.opened)
}

func TestResolver_Properties(t *testing.T) {
	rootA := testutil.SelfSigned(t, "Root A").Raw
	rootB := testutil.SelfSigned(t, "Root B").Raw
	rootC := testutil.SelfSigned(t, "Root C").Raw

	tests := []struct {
		name    string
		domains map[x509trust.Domain]*fakeDomain
		want    [][]byte
	}{
		{
			name: "User deny overrides system trust",
			domains: map[x509trust.Domain]*fakeDomain{
				x509trust.User:   {records: []record{{rootA, verdict(x509trust.Deny)}}},
				x509trust.System: {records: []record{{rootA, verdict(x509trust.TrustRoot)}, {rootB, nil}}},
			},
			want: [][]byte{rootB},
		},
		{
			name: "User trust overrides admin deny",
			domains: map[x509trust.Domain]*fakeDomain{
				x509trust.User:  {records: []record{{rootA, verdict(x509trust.TrustAsRoot)}}},
				x509trust.Admin: {records: []record{{rootA, verdict(x509trust.Deny)}}},
			},
			want: [][]byte{rootA},
		},
		{
			name: "Admin deny overrides system default",
			domains: map[x509trust.Domain]*fakeDomain{
				x509trust.Admin:  {records: []record{{rootC, verdict(x509trust.Deny)}}},
				x509trust.System: {records: []record{{rootC, nil}}},
			},
			want: nil,
		},
		{
			name: "Missing verdict defaults to trust root",
			domains: map[x509trust.Domain]*fakeDomain{
				x509trust.System: {records: []record{{rootA, nil}, {rootB, nil}}},
			},
			want: [][]byte{rootA, rootB},
		},
		{
			name: "Deny everywhere is never emitted",
			domains: map[x509trust.Domain]*fakeDomain{
				x509trust.User:   {records: []record{{rootA, verdict(x509trust.Deny)}}},
				x509trust.Admin:  {records: []record{{rootA, verdict(x509trust.Deny)}}},
				x509trust.System: {records: []record{{rootA, verdict(x509trust.Deny)}, {rootB, verdict(x509trust.TrustRoot)}}},
			},
			want: [][]byte{rootB},
		},
		{
			name: "Unspecified and invalid verdicts are excluded",
			domains: map[x509trust.Domain]*fakeDomain{
				x509trust.Admin: {records: []record{
					{rootA, verdict(x509trust.Unspecified)},
					{rootB, verdict(x509trust.Invalid)},
					{rootC, verdict(x509trust.TrustAsRoot)},
				}},
			},
			want: [][]byte{rootC},
		},
		{
			name: "Duplicates within one domain keep the first verdict",
			domains: map[x509trust.Domain]*fakeDomain{
				x509trust.User: {records: []record{{rootA, verdict(x509trust.TrustRoot)}, {rootA, verdict(x509trust.Deny)}}},
			},
			want: [][]byte{rootA},
		},
		{
			name:    "Empty store",
			domains: nil,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle, err := x509trust.New(&fakeStore{domains: tt.domains}).Resolve()
			require.NoError(t, err)
			require.NotNil(t, bundle)

			if len(tt.want) == 0 {
				assert.Empty(t, bundle)
				return
			}

			got := decodeBodies(t, bundle)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestResolver_Idempotent(t *testing.T) {
	store := &fakeStore{domains: map[x509trust.Domain]*fakeDomain{
		x509trust.User:   {records: []record{{testutil.SelfSigned(t, "User Root").Raw, nil}}},
		x509trust.System: {records: []record{{testutil.SelfSigned(t, "System Root").Raw, verdict(x509trust.TrustRoot)}}},
	}}
	resolver := x509trust.New(store)

	first, err := resolver.Resolve()
	require.NoError(t, err)
	second, err := resolver.Resolve()
	require.NoError(t, err)

	assert.Equal(t, blocks(first), blocks(second))
	assert.Len(t, blocks(first), 2)
}

func TestResolver_FailurePropagation(t *testing.T) {
	root := testutil.SelfSigned(t, "Root").Raw
	boom := errors.New("keychain unavailable")

	tests := []struct {
		name  string
		store *fakeStore
	}{
		{
			name: "Open fails after earlier domains succeed",
			store: &fakeStore{
				domains: map[x509trust.Domain]*fakeDomain{x509trust.User: {records: []record{{root, nil}}}},
				openErr: map[x509trust.Domain]error{x509trust.System: boom},
			},
		},
		{
			name: "Verdict query fails",
			store: &fakeStore{
				domains: map[x509trust.Domain]*fakeDomain{
					x509trust.User:  {records: []record{{root, nil}}},
					x509trust.Admin: {records: []record{{root, nil}}, queryErr: boom},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle, err := x509trust.New(tt.store).Resolve()
			require.Error(t, err)
			assert.Nil(t, bundle, "no partial output on failure")
			assert.ErrorIs(t, err, x509trust.ErrStoreAccess)
			assert.ErrorIs(t, err, boom)
		})
	}
}

func TestResolver_PreclassifiedErrorNotDoubleWrapped(t *testing.T) {
	inner := errors.Join(x509trust.ErrStoreAccess, errors.New("exit status 1"))
	store := &fakeStore{openErr: map[x509trust.Domain]error{x509trust.User: inner}}

	_, err := x509trust.New(store).Merge()
	require.Error(t, err)
	assert.ErrorIs(t, err, x509trust.ErrStoreAccess)
	assert.Equal(t, 1, strings.Count(err.Error(), "store access failed"))
}

func TestMerged_RecordsWinningDomain(t *testing.T) {
	root := testutil.SelfSigned(t, "Shared Root").Raw
	store := &fakeStore{domains: map[x509trust.Domain]*fakeDomain{
		x509trust.Admin:  {records: []record{{root, verdict(x509trust.TrustAsRoot)}}},
		x509trust.System: {records: []record{{root, verdict(x509trust.Deny)}}},
	}}

	merged, err := x509trust.New(store).Merge()
	require.NoError(t, err)
	require.Equal(t, 1, merged.Len())

	entry, ok := merged.Lookup(root)
	require.True(t, ok)
	assert.Equal(t, x509trust.Admin, entry.Domain)
	assert.Equal(t, x509trust.TrustAsRoot, entry.Verdict)
	assert.Equal(t, root, entry.DER)
	assert.Len(t, merged.Roots(), 1)
}

func TestMerged_ToSummaryJSON(t *testing.T) {
	trusted := testutil.SelfSigned(t, "Trusted Root")
	denied := testutil.SelfSigned(t, "Denied Root")
	store := &fakeStore{domains: map[x509trust.Domain]*fakeDomain{
		x509trust.User:   {records: []record{{denied.Raw, verdict(x509trust.Deny)}}},
		x509trust.System: {records: []record{{trusted.Raw, nil}}},
	}}

	merged, err := x509trust.New(store).Merge()
	require.NoError(t, err)

	data, err := merged.ToSummaryJSON()
	require.NoError(t, err)

	var summary x509trust.BundleSummary
	require.NoError(t, json.Unmarshal(data, &summary))

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Trusted)
	require.Len(t, summary.Roots, 1)
	assert.Contains(t, summary.Roots[0].Subject, "Trusted Root")
	assert.Equal(t, "system", summary.Roots[0].Domain)
	assert.Equal(t, "trust-root", summary.Roots[0].Verdict)
}

func TestMerged_RenderTable(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		merged, err := x509trust.New(&fakeStore{}).Merge()
		require.NoError(t, err)
		assert.Equal(t, "No certificates found in any trust domain", merged.RenderTable())
	})

	t.Run("Shows excluded certificates", func(t *testing.T) {
		store := &fakeStore{domains: map[x509trust.Domain]*fakeDomain{
			x509trust.User:   {records: []record{{testutil.SelfSigned(t, "Blocked CA").Raw, verdict(x509trust.Deny)}}},
			x509trust.System: {records: []record{{testutil.SelfSigned(t, "Allowed CA").Raw, verdict(x509trust.TrustAsRoot)}}},
		}}
		merged, err := x509trust.New(store).Merge()
		require.NoError(t, err)

		table := merged.RenderTable()
		for _, want := range []string{"Blocked CA", "Allowed CA", "User", "System", "Deny", "Trust As Root"} {
			assert.Contains(t, table, want)
		}
	})
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		raw    int
		want   x509trust.Verdict
		isRoot bool
		name   string
	}{
		{raw: 1, want: x509trust.TrustRoot, isRoot: true, name: "trust-root"},
		{raw: 2, want: x509trust.TrustAsRoot, isRoot: true, name: "trust-as-root"},
		{raw: 3, want: x509trust.Deny, isRoot: false, name: "deny"},
		{raw: 4, want: x509trust.Unspecified, isRoot: false, name: "unspecified"},
		{raw: 0, want: x509trust.Invalid, isRoot: false, name: "invalid"},
		{raw: 42, want: x509trust.Invalid, isRoot: false, name: "invalid"},
	}

	for _, tt := range tests {
		v := x509trust.ParseVerdict(tt.raw)
		assert.Equal(t, tt.want, v, "ParseVerdict(%d)", tt.raw)
		assert.Equal(t, tt.isRoot, v.IsRoot(), "IsRoot for %d", tt.raw)
		assert.Equal(t, tt.name, v.String(), "String for %d", tt.raw)
	}
}
