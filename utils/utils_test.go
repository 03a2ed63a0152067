package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodendoors/doorshowcase/utils"
)

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 7, utils.ParseIntDefault("", 7))
	assert.Equal(t, 7, utils.ParseIntDefault("junk", 7))
	assert.Equal(t, 3, utils.ParseIntDefault("3", 7))
}

func TestParseBoolQuery(t *testing.T) {
	got, err := utils.ParseBoolQuery("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = utils.ParseBoolQuery("true")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, *got)

	_, err = utils.ParseBoolQuery("maybe")
	assert.Error(t, err)
}

func TestParseFloatQuery(t *testing.T) {
	got, err := utils.ParseFloatQuery("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = utils.ParseFloatQuery("12.5")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 12.5, *got)

	_, err = utils.ParseFloatQuery("cheap")
	assert.Error(t, err)
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, utils.SplitCSV(" a , b ,"))
	assert.Nil(t, utils.SplitCSV(""))
	assert.Nil(t, utils.SplitCSV(" , "))
}
