package utils

// ElementInList checks whether the given list contains the given element.
// normalizer is an optional argument of type func(T) T. If given, the comparison is made modulo normalizer,
// where we assume normalizer is idempotent (i.e. normalizer(normalizer(x)) == normalizer(x)  )
func ElementInList[T comparable](element T, list []T, normalizer ...func(T) T) bool {
	if len(normalizer) > 1 {
		panic("Can only provide 1 optional function argument for normalization")
	}
	if len(normalizer) == 1 {
		normalizerfun := normalizer[0]
		element = normalizerfun(element)
		for _, v := range list {
			if element == normalizerfun(v) {
				return true
			}
		}
	} else {
		for _, v := range list {
			if element == v {
				return true
			}
		}
	}
	return false
}
