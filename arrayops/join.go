package arrayops

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Join renders every element with fmt.Sprint and concatenates the renderings
// with delimiter between consecutive elements. The delimiter never leads or
// trails.
//
// No elements yields "". A single element is rendered without consulting the
// delimiter at all, so Join("???", x) == fmt.Sprint(x).
func Join[T any](delimiter string, items ...T) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return fmt.Sprint(items[0])
	case 2:
		return fmt.Sprint(items[0]) + delimiter + fmt.Sprint(items[1])
	}

	first := fmt.Sprint(items[0])
	last := len(items) - 1

	var sb strings.Builder
	sb.Grow((len(first) + len(delimiter)) * len(items))
	sb.WriteString(first)
	sb.WriteString(delimiter)
	for i := 1; i < len(items); i++ {
		sb.WriteString(fmt.Sprint(items[i]))
		if i == last {
			return sb.String()
		}
		sb.WriteString(delimiter)
	}
	panic("arrayops: Join: loop must terminate at the final element")
}

// JoinInts is [Join] specialized to signed integers, rendering each element
// with strconv instead of fmt. Prefer it when the elements are known to be
// integers and the call sits on a hot path.
func JoinInts[N constraints.Signed](delimiter string, items ...N) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return strconv.FormatInt(int64(items[0]), 10)
	case 2:
		return strconv.FormatInt(int64(items[0]), 10) + delimiter + strconv.FormatInt(int64(items[1]), 10)
	}

	first := strconv.FormatInt(int64(items[0]), 10)
	last := len(items) - 1

	var sb strings.Builder
	sb.Grow((len(first) + len(delimiter)) * len(items))
	sb.WriteString(first)
	sb.WriteString(delimiter)
	for i := 1; i < len(items); i++ {
		sb.WriteString(strconv.FormatInt(int64(items[i]), 10))
		if i == last {
			return sb.String()
		}
		sb.WriteString(delimiter)
	}
	panic("arrayops: JoinInts: loop must terminate at the final element")
}
