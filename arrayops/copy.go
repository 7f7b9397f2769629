package arrayops

// BulkCopyThreshold is the run length at or above which region copies use
// the builtin copy instead of an element-by-element loop. Below it, the
// loop's lack of call overhead wins; at or above it, the runtime's optimized
// memmove does. The value is an empirically chosen default and may be
// recalibrated as hardware and toolchains change.
const BulkCopyThreshold = 6

// copyRegion copies length elements from src starting at srcPos into dst
// starting at dstPos, choosing the strategy by [BulkCopyThreshold].
//
// No bounds are validated beyond what slice indexing enforces; out-of-range
// positions panic exactly as the equivalent direct access would.
func copyRegion[T any](src []T, srcPos int, dst []T, dstPos, length int) {
	if length >= BulkCopyThreshold {
		copy(dst[dstPos:dstPos+length], src[srcPos:srcPos+length])
		return
	}
	for i := 0; i < length; i++ {
		dst[dstPos+i] = src[srcPos+i]
	}
}
