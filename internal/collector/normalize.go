package collector

import (
	"math"
	"strconv"
	"strings"
)

// Normalize maps one raw API record into the canonical Item shape. Every
// logical field is resolved by trying an ordered list of source keys and
// taking the first present, coercible value; anything missing or malformed
// simply stays absent. Store and city always come from the Store argument.
// Normalize never fails.
func Normalize(raw RawItem, store Store) Item {
	priceInfo, _ := raw["price"].(map[string]any)

	price := firstFloat(
		priceInfo["price"],
		priceInfo["current"],
		priceInfo["priceInteger"],
		raw["price"],
	)
	was := firstFloat(
		priceInfo["wasPrice"],
		priceInfo["listPrice"],
		priceInfo["comparisonPrice"],
	)

	return Item{
		SKU:          firstString(raw["usItemId"], raw["productId"], raw["id"]),
		Title:        firstString(raw["name"], raw["displayName"], raw["title"]),
		Store:        store.Name,
		City:         store.City,
		Price:        price,
		Was:          was,
		Pct:          pctOff(price, was),
		URL:          absoluteURL(firstString(raw["productUrl"], raw["canonicalUrl"], raw["productCanonicalUrl"])),
		Image:        imageURL(raw),
		Availability: firstString(raw["availabilityStatus"], raw["availability"]),
	}
}

// pctOff derives the discount percentage from price and was-price. It is
// computed only when both are present and was is strictly positive, and is
// clamped to a minimum of 0; otherwise it stays absent.
func pctOff(price, was *float64) *int {
	if price == nil || was == nil || *was <= 0 {
		return nil
	}
	pct := int(math.Round((1 - *price / *was) * 100))
	if pct < 0 {
		pct = 0
	}
	return &pct
}

// absoluteURL rewrites a root-relative provider path to an absolute URL.
// Already-absolute values pass through unchanged.
func absoluteURL(u string) string {
	if strings.HasPrefix(u, "/") {
		return BaseURL + u
	}
	return u
}

// imageURL resolves the thumbnail from the imageInfo or image sub-object.
// Absent when neither is a mapping.
func imageURL(raw RawItem) string {
	for _, key := range []string{"imageInfo", "image"} {
		info, ok := raw[key].(map[string]any)
		if !ok || len(info) == 0 {
			continue
		}
		return firstString(info["thumbnail"], info["mainUrl"])
	}
	return ""
}

// firstFloat returns the first candidate coercible to a float, or nil.
func firstFloat(candidates ...any) *float64 {
	for _, c := range candidates {
		if f, ok := toFloat(c); ok {
			v := f
			return &v
		}
	}
	return nil
}

// toFloat coerces JSON numbers and numeric strings. Everything else,
// including nil and sub-objects, is skipped.
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// firstString returns the first candidate with a usable textual value.
// Numeric identifiers are formatted without a decimal point so they stay
// stable as skus.
func firstString(candidates ...any) string {
	for _, c := range candidates {
		switch t := c.(type) {
		case string:
			if t != "" {
				return t
			}
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64)
		case int:
			return strconv.Itoa(t)
		}
	}
	return ""
}
