package activeobject

import (
	"testing"

	is "github.com/stretchr/testify/assert"
)

func TestAssertionError_FormatsStableSiteID(t *testing.T) {
	err := &AssertionError{Module: "actq", ID: 300, Detail: "get called on an empty queue"}
	is.Equal(t, "actq:300: get called on an empty queue", err.Error())
}

func TestAssert_PanicsWithAssertionErrorOnFailure(t *testing.T) {
	is.PanicsWithValue(t, &AssertionError{Module: "mod", ID: 1, Detail: "d"}, func() {
		assert("mod", 1, false, "d")
	})
}

func TestAssert_NoOpWhenConditionHolds(t *testing.T) {
	is.NotPanics(t, func() {
		assert("mod", 1, true, "d")
	})
}
