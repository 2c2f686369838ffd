package render

import (
	"fmt"
	"time"
)

// Fixed zh-CN strings.
const (
	UnknownExchange = "Unknown"
	UnknownToken    = "Unknown"

	ModalUnknownExchange = "未知"
	ModalUnknownToken    = "未知代币"
	NoListingsMessage    = "该日期暂无上市信息"

	TimeLabel  = "时间："
	PairsLabel = "交易对："
	NotesLabel = "详情："

	AllExchanges = "全部交易所"
)

var monthNames = [12]string{
	"一月", "二月", "三月", "四月", "五月", "六月",
	"七月", "八月", "九月", "十月", "十一月", "十二月",
}

// MonthName returns the localized month name.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

// MonthHeader formats the calendar header, e.g. "2024年 三月".
func MonthHeader(year int, month time.Month) string {
	return fmt.Sprintf("%d年 %s", year, MonthName(month))
}

// DateHeading formats the modal heading, e.g. "2024年 3月 5日".
func DateHeading(t time.Time) string {
	return fmt.Sprintf("%d年 %d月 %d日", t.Year(), int(t.Month()), t.Day())
}
