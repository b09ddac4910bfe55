package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zamezamo/partsbot/internal/models"
)

func TestDecodeAction(t *testing.T) {
	testCases := []struct {
		testName         string
		payload          string
		expectedCode     int
		expectedCategory models.Category
		expectedOk       bool
	}{
		{
			testName:     "Код без категории",
			payload:      "3",
			expectedCode: 3,
			expectedOk:   true,
		},
		{
			testName:         "Код с категорией",
			payload:          "0:ABRSMATS",
			expectedCode:     0,
			expectedCategory: models.CategoryAbrasives,
			expectedOk:       true,
		},
		{
			testName:   "Неизвестная категория отбрасывается",
			payload:    "0:NOPE",
			expectedOk: false,
		},
		{
			testName:   "Нечисловой код отбрасывается",
			payload:    "abc",
			expectedOk: false,
		},
		{
			testName:   "Пустой payload отбрасывается",
			payload:    "",
			expectedOk: false,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.testName, func(t *testing.T) {
			code, category, ok := decodeAction(testCase.payload)

			assert.Equal(t, testCase.expectedOk, ok)
			if ok {
				assert.Equal(t, testCase.expectedCode, code)
				assert.Equal(t, testCase.expectedCategory, category)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, category := range models.Categories {
		code, decoded, ok := decodeAction(encodeCategoryAction(actChooseCategoryPick, category))
		assert.True(t, ok)
		assert.Equal(t, actChooseCategoryPick, code)
		assert.Equal(t, category, decoded)
	}
}

func TestValidators(t *testing.T) {
	assert.True(t, nameRe.MatchString("Ян"))
	assert.False(t, nameRe.MatchString("Я"))

	assert.True(t, phoneRe.MatchString("291234567"))
	assert.False(t, phoneRe.MatchString("29123456"))
	assert.False(t, phoneRe.MatchString("+375291234567"))

	assert.True(t, addressRe.MatchString("г. Минск, ул. Ленина 1"))
	assert.False(t, addressRe.MatchString("а"))

	assert.True(t, countRe.MatchString("0"))
	assert.True(t, countRe.MatchString("42"))
	assert.False(t, countRe.MatchString("-1"))
	assert.False(t, countRe.MatchString("много"))
}
