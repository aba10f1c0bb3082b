// Package datetoken 解析前端传入的紧凑日期 token
// "yyyymm" 用于月度查询，"yyyymmdd" 用于期间查询
package datetoken

import (
	"strconv"
	"time"

	"pet_diary_server/pkg/errorx"
)

// MonthRange 将 6 位 "yyyymm" token 解析为该月的第一天和最后一天
// 月末按实际天数计算，正确处理 28/29/30/31 天的月份
func MonthRange(token string) (start, end time.Time, err error) {
	if len(token) != 6 {
		return start, end, errorx.Newf(errorx.CodeInvalidParam, "月份格式错误: %s", token)
	}
	year, err1 := strconv.Atoi(token[:4])
	month, err2 := strconv.Atoi(token[4:6])
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		return start, end, errorx.Newf(errorx.CodeInvalidParam, "月份格式错误: %s", token)
	}
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	// 下月第 0 天即本月最后一天
	end = time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.Local)
	return start, end, nil
}

// Day 将 8 位 "yyyymmdd" token 解析为该日零点
func Day(token string) (time.Time, error) {
	if len(token) != 8 {
		return time.Time{}, errorx.Newf(errorx.CodeInvalidParam, "日期格式错误: %s", token)
	}
	t, err := time.ParseInLocation("20060102", token, time.Local)
	if err != nil {
		return time.Time{}, errorx.Wrapf(err, errorx.CodeInvalidParam, "日期格式错误: %s", token)
	}
	return t, nil
}

// DateField 解析请求体中的 "yyyy-mm-dd" 日期字段
// 空字符串表示未设置，返回 nil
func DateField(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return nil, errorx.Wrapf(err, errorx.CodeInvalidParam, "日期格式错误: %s", value)
	}
	return &t, nil
}

// FormatDateField 将可空日期格式化为 "yyyy-mm-dd"，未设置返回空字符串
func FormatDateField(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
