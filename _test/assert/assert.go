package assert

import (
	"fmt"
	"reflect"
	"testing"
)

func Assert(tb testing.TB, condition bool, msgAndArgs ...any) {
	if !condition {
		msg, msgArgs := split(msgAndArgs)
		fmt.Printf("Assert failed. "+msg+"\n", msgArgs...)
		tb.FailNow()
	}
}

func Equals(tb testing.TB, expected, actual any, msgAndArgs ...any) {
	if !reflect.DeepEqual(expected, actual) {
		msg, msgArgs := split(msgAndArgs)
		fmt.Printf("Failed equality check: "+msg+"\n\tExpected: %#v\n\tActual:   %#v\n", append(append([]any{}, msgArgs...), expected, actual)...)
		tb.FailNow()
	}
}

func NotEquals(tb testing.TB, expected, actual any, msgAndArgs ...any) {
	if reflect.DeepEqual(expected, actual) {
		msg, msgArgs := split(msgAndArgs)
		fmt.Printf("Failed non-equality check: "+msg+"\n\tExpected: %#v\n\tActual:   %#v\n", append(append([]any{}, msgArgs...), expected, actual)...)
		tb.FailNow()
	}
}

func split(msgAndArgs []any) (string, []any) {
	var msg string
	var msgArgs []any
	if len(msgAndArgs) > 0 {
		msg = msgAndArgs[0].(string)
		if len(msgAndArgs) > 1 {
			msgArgs = msgAndArgs[1:]
		}
	}
	return msg, msgArgs
}
