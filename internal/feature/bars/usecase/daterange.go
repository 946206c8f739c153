package usecase

import (
	"regexp"
	"time"

	"trade_review_backend/internal/feature/bars/domain"
	"trade_review_backend/internal/feature/bars/domain/entity"
)

// dateLayout はリクエストで受け付ける唯一の日付フォーマットです。
const dateLayout = "2006-01-02"

// time.Parse は月・日の桁数に寛容なため、先に桁数を固定で検証する。
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseRange は開始日・終了日の文字列を両端を含むUTCエポック秒の境界へ変換します。
// 開始日はその日の 00:00:00、終了日は同じ日の 23:59:59 に解決されます。
// 空文字列はその側が無制限であることを意味します。
func ParseRange(start, end string) (entity.DateRange, error) {
	var r entity.DateRange

	if start != "" {
		day, err := parseDate(start)
		if err != nil {
			return entity.DateRange{}, err
		}
		ts := day.Unix()
		r.Start = &ts
	}

	if end != "" {
		day, err := parseDate(end)
		if err != nil {
			return entity.DateRange{}, err
		}
		ts := day.Add(23*time.Hour + 59*time.Minute + 59*time.Second).Unix()
		r.End = &ts
	}

	return r, nil
}

// parseDate は YYYY-MM-DD 文字列をUTCのカレンダー日付として検証・解析します。
// 存在しない日付（例: 2024-02-30）も同じ InvalidDateError になります。
func parseDate(value string) (time.Time, error) {
	if !datePattern.MatchString(value) {
		return time.Time{}, &domain.InvalidDateError{Value: value}
	}
	day, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, &domain.InvalidDateError{Value: value}
	}
	return day, nil
}
