package types

import "strconv"

func indexPath(field string, i int) string {
	return field + "[" + strconv.Itoa(i) + "]"
}
