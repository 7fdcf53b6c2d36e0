package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryFromOrderID(t *testing.T) {
	c, err := CountryFromOrderID("RAD-123456-ABC")
	require.NoError(t, err)
	assert.Equal(t, CountryNigeria, c)

	c, err = CountryFromOrderID("rgh-654321-xyz")
	require.NoError(t, err)
	assert.Equal(t, CountryGhana, c)

	_, err = CountryFromOrderID("XYZ-1")
	assert.ErrorIs(t, err, ErrUnknownCountry)
}

func TestParseOrderID(t *testing.T) {
	cases := []struct {
		in      string
		id      string
		country Country
		err     error
	}{
		{"RAD-123456-ABC", "RAD-123456-ABC", CountryNigeria, nil},
		{" rgh-654321-x9z ", "RGH-654321-X9Z", CountryGhana, nil},
		{"FOO", "", "", ErrInvalidOrderID},
		{"RAD-1", "", "", ErrInvalidOrderID},
		{"RAD-12345-ABC", "", "", ErrInvalidOrderID},
		{"RAD-123456-AB", "", "", ErrInvalidOrderID},
		{"RAD-123456-AB!", "", "", ErrInvalidOrderID},
		{"RAD-123456-ABCD", "", "", ErrInvalidOrderID},
		{"XYZ-123456-ABC", "", "", ErrUnknownCountry},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			id, country, err := ParseOrderID(tc.in)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.id, id)
			assert.Equal(t, tc.country, country)
		})
	}
}

func TestTable_PackageLookup(t *testing.T) {
	tbl, err := Default().Lookup(CountryNigeria)
	require.NoError(t, err)

	p, err := tbl.Package("birthday", "birthday-basic")
	require.NoError(t, err)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(4500)))

	_, err = tbl.Package("weddings", "birthday-basic")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = tbl.Package("birthday", "birthday-gold")
	assert.ErrorIs(t, err, ErrUnknownPackage)
}

func TestTable_GroupPrice_Flat(t *testing.T) {
	tbl, _ := Default().Lookup(CountryNigeria)
	pkg, err := tbl.Package("family", "family-basic")
	require.NoError(t, err)

	for _, size := range []int{0, 1, 2} {
		price, err := tbl.GroupPrice("family", pkg, size)
		require.NoError(t, err)
		assert.True(t, price.Equal(pkg.Price), "size %d", size)
	}

	price, err := tbl.GroupPrice("family", pkg, 5)
	require.NoError(t, err)
	assert.Equal(t, "16000", price.String())
}

func TestTable_GroupPrice_Table(t *testing.T) {
	tbl, _ := Default().Lookup(CountryGhana)
	pkg, err := tbl.Package("family", "family-basic")
	require.NoError(t, err)

	cases := map[int]string{
		2: "500",
		3: "560",
		4: "610",
		6: "690",
		8: "760",
	}
	for size, want := range cases {
		price, err := tbl.GroupPrice("family", pkg, size)
		require.NoError(t, err)
		assert.Equal(t, want, price.String(), "size %d", size)
	}
}

func TestTable_GroupPrice_NonGroupCategory(t *testing.T) {
	tbl, _ := Default().Lookup(CountryNigeria)
	pkg, _ := tbl.Package("birthday", "birthday-basic")

	price, err := tbl.GroupPrice("birthday", pkg, 7)
	require.NoError(t, err)
	assert.True(t, price.Equal(pkg.Price))
}

func TestTableSurcharge_GapUsesLowerStep(t *testing.T) {
	s := TableSurcharge{
		Steps: map[int]decimal.Decimal{3: decimal.NewFromInt(10), 5: decimal.NewFromInt(30)},
		Max:   5,
	}
	assert.Equal(t, "10", s.Surcharge(4).String())
	assert.Equal(t, "30", s.Surcharge(5).String())
	assert.Equal(t, "30", s.Surcharge(9).String())
}

func TestTable_PackagesFilter(t *testing.T) {
	tbl, _ := Default().Lookup(CountryNigeria)

	pkgs, err := tbl.Packages("birthday")
	require.NoError(t, err)
	require.Len(t, pkgs, 3)
	assert.Equal(t, "birthday-basic", pkgs[0].ID)

	all, err := tbl.Packages("")
	require.NoError(t, err)
	assert.Greater(t, len(all), len(pkgs))

	_, err = tbl.Packages("nope")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestParseCountry(t *testing.T) {
	c, err := ParseCountry(" gh ")
	require.NoError(t, err)
	assert.Equal(t, CountryGhana, c)
	assert.Equal(t, "RGH-", OrderPrefix(c))

	_, err = ParseCountry("KE")
	assert.ErrorIs(t, err, ErrUnknownCountry)
}
