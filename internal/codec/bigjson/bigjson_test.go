package bigjson

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerEntry struct {
	ID          int64   `json:"id"`
	Amount      int64   `json:"amount"`
	Description string  `json:"description"`
	Rate        float64 `json:"changePercent"`
}

func TestMarshalStringifiesInt64Fields(t *testing.T) {
	entry := ledgerEntry{ID: 7, Amount: 9007199254740993, Description: "past 2^53", Rate: 1.5}

	encoded, err := Marshal(entry)
	require.NoError(t, err)

	assert.Contains(t, string(encoded), `"amount":"9007199254740993"`)
	assert.Contains(t, string(encoded), `"id":"7"`)
	assert.Contains(t, string(encoded), `"changePercent":1.5`)
}

func TestRoundTripPreservesAllowListedIntegers(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
	}{
		{name: "zero", amount: 0},
		{name: "small", amount: 100},
		{name: "past float53 precision", amount: 9007199254740993},
		{name: "max int64", amount: math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := ledgerEntry{ID: 1, Amount: tt.amount, Description: "x", Rate: 0.25}

			encoded, err := Marshal(entry)
			require.NoError(t, err)

			var decoded ledgerEntry
			require.NoError(t, Unmarshal(encoded, &decoded))
			assert.Equal(t, entry, decoded)
		})
	}
}

func TestDecodeCoercesOnlyAllowListedKeys(t *testing.T) {
	payload := []byte(`{"amount":"12345","reference":"12345","note":"0042"}`)

	tree, err := Parse(payload)
	require.NoError(t, err)

	object, ok := tree.(map[string]any)
	require.True(t, ok)

	assert.Equal(t, int64(12345), object["amount"])
	assert.Equal(t, "12345", object["reference"])
	assert.Equal(t, "0042", object["note"])
}

func TestDecodeLeavesNonDigitStringsInListedKeys(t *testing.T) {
	payload := []byte(`{"amount":"12.5","id":"tx-99","timestamp":"-5"}`)

	tree, err := Parse(payload)
	require.NoError(t, err)

	object := tree.(map[string]any)
	assert.Equal(t, "12.5", object["amount"])
	assert.Equal(t, "tx-99", object["id"])
	assert.Equal(t, "-5", object["timestamp"])
}

func TestDecodeKeepsOverflowingDigitStrings(t *testing.T) {
	// One past max int64; coercion would corrupt, so the string stays.
	payload := []byte(`{"balance":"9223372036854775808"}`)

	tree, err := Parse(payload)
	require.NoError(t, err)

	object := tree.(map[string]any)
	assert.Equal(t, "9223372036854775808", object["balance"])
}

func TestDecodeRecursesIntoArraysAndNestedObjects(t *testing.T) {
	payload := []byte(`{"transactions":[{"amount":"100","description":"a"},{"amount":"250","description":"b"}]}`)

	var decoded struct {
		Transactions []struct {
			Amount      int64  `json:"amount"`
			Description string `json:"description"`
		} `json:"transactions"`
	}
	require.NoError(t, Unmarshal(payload, &decoded))

	require.Len(t, decoded.Transactions, 2)
	assert.Equal(t, int64(100), decoded.Transactions[0].Amount)
	assert.Equal(t, int64(250), decoded.Transactions[1].Amount)
}

func TestMarshalHandlesMapsSlicesAndPointers(t *testing.T) {
	amount := int64(42)
	value := map[string]any{
		"amounts": []int64{1, 2},
		"nested":  map[string]int64{"balance": 9},
		"ptr":     &amount,
		"null":    nil,
	}

	encoded, err := Marshal(value)
	require.NoError(t, err)

	assert.Contains(t, string(encoded), `"amounts":["1","2"]`)
	assert.Contains(t, string(encoded), `"balance":"9"`)
	assert.Contains(t, string(encoded), `"ptr":"42"`)
	assert.Contains(t, string(encoded), `"null":null`)
}

func TestMarshalHonorsJSONTags(t *testing.T) {
	value := struct {
		Kept    int64  `json:"kept"`
		Renamed string `json:"other_name"`
		Skipped string `json:"-"`
		Empty   int64  `json:"empty,omitempty"`
	}{Kept: 5, Renamed: "v", Skipped: "hidden"}

	encoded, err := Marshal(value)
	require.NoError(t, err)

	assert.Contains(t, string(encoded), `"kept":"5"`)
	assert.Contains(t, string(encoded), `"other_name":"v"`)
	assert.NotContains(t, string(encoded), "hidden")
	assert.NotContains(t, string(encoded), "empty")
}
