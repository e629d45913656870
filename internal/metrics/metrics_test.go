package metrics

import (
	"testing"
)

func TestCacheMetrics(t *testing.T) {
	// Note: Metrics are package-level variables, automatically registered.
	// This test just verifies the functions don't panic

	t.Run("RecordLookup", func(t *testing.T) {
		// This should not panic
		RecordLookup("notice:list")
		RecordLookup("notice:detail")
	})

	t.Run("RecordHit", func(t *testing.T) {
		// This should not panic
		RecordHit("notice:list")
	})

	t.Run("RecordMiss", func(t *testing.T) {
		// This should not panic
		RecordMiss("notice:list")
	})

	t.Run("RecordFallback", func(t *testing.T) {
		// This should not panic
		RecordFallback("leave")
	})

	t.Run("RecordRemoteError", func(t *testing.T) {
		// This should not panic
		RecordRemoteError("leave")
	})

	t.Run("RecordStoreError", func(t *testing.T) {
		// This should not panic
		RecordStoreError("notice:list", "set")
		RecordStoreError("notice:list", "decode")
	})

	t.Run("TimeLookup", func(t *testing.T) {
		// This should not panic
		timer := TimeLookup("notice:list")
		timer() // Call the returned function
	})
}
