package datetoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pet_diary_server/pkg/errorx"
)

func TestMonthRange(t *testing.T) {
	cases := []struct {
		token   string
		lastDay int
	}{
		{"202302", 28}, // 平年二月
		{"202402", 29}, // 闰年二月
		{"202304", 30},
		{"202301", 31},
		{"202312", 31},
	}
	for _, c := range cases {
		start, end, err := MonthRange(c.token)
		assert.NoError(t, err, c.token)
		assert.Equal(t, 1, start.Day())
		assert.Equal(t, c.lastDay, end.Day(), c.token)
		assert.Equal(t, start.Month(), end.Month())
	}
}

func TestMonthRangeInvalid(t *testing.T) {
	for _, token := range []string{"", "2023", "20231", "2023xx", "202313", "202300"} {
		_, _, err := MonthRange(token)
		assert.Error(t, err, token)
		assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
	}
}

func TestDay(t *testing.T) {
	d, err := Day("20230215")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 2, 15, 0, 0, 0, 0, time.Local), d)

	for _, token := range []string{"2023021", "abcdefgh", "20230230"} {
		_, err := Day(token)
		assert.Error(t, err, token)
	}
}
