package extract

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeMoney coerces a wire value into a decimal amount. Numbers pass
// through; strings have thousands separators, baht signs and whitespace
// stripped before parsing. Residual non-numeric text is an error, never a
// silent zero.
func NormalizeMoney(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case string:
		s := strings.TrimSpace(t)
		s = strings.ReplaceAll(s, ",", "")
		s = strings.ReplaceAll(s, "฿", "")
		s = strings.ReplaceAll(s, " ", "")
		s = strings.TrimSuffix(s, "บาท")
		if s == "" || s == "-" {
			return 0, fmt.Errorf("empty amount %q", t)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("unparsable amount %q", t)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("amount has type %T", v)
	}
}

// NormalizeYearBE coerces a calendar year to Buddhist Era. Years already in
// the plausible BE window pass through; Gregorian-looking years are shifted
// by 543 and flagged as converted; anything else is an error.
func NormalizeYearBE(v any) (year int, converted bool, err error) {
	var y int
	switch t := v.(type) {
	case float64:
		y = int(t)
	case int:
		y = t
	case string:
		s := strings.TrimSpace(t)
		y, err = strconv.Atoi(s)
		if err != nil {
			return 0, false, fmt.Errorf("unparsable year %q", t)
		}
	default:
		return 0, false, fmt.Errorf("year has type %T", v)
	}
	switch {
	case y >= 2400 && y <= 2700:
		return y, false, nil
	case y >= 1900 && y <= 2200:
		return y + 543, true, nil
	default:
		return 0, false, fmt.Errorf("year %d outside plausible range", y)
	}
}

// NormalizeInt coerces a wire value to an int.
func NormalizeInt(v any) (int, error) {
	switch t := v.(type) {
	case float64:
		return int(t), nil
	case int:
		return t, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, fmt.Errorf("unparsable integer %q", t)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("integer has type %T", v)
	}
}

// NormalizeBool coerces a wire value to a bool. Thai check-mark style values
// appear in older documents, so a handful of string spellings are accepted.
func NormalizeBool(v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "ใช่", "มี", "1":
			return true, nil
		case "false", "no", "ไม่ใช่", "ไม่มี", "0", "":
			return false, nil
		}
		return false, fmt.Errorf("unparsable boolean %q", t)
	case float64:
		return t != 0, nil
	default:
		return false, fmt.Errorf("boolean has type %T", v)
	}
}

// NormalizeText trims a string value; empty strings become nil upstream.
func NormalizeText(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("text has type %T", v)
	}
	return strings.TrimSpace(s), nil
}
