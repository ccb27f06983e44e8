package util

import (
	"fmt"
	"runtime"
)

func doPanic(stack int) {
	pc, file, line, ok := runtime.Caller(1 + stack)
	if ok {
		fun := runtime.FuncForPC(pc)
		if fun != nil {
			panic(fmt.Sprintf("Assertion failed in function %s on %s:%d", fun.Name(), file, line))
		} else {
			panic(fmt.Sprintf("Assertion failed on %s:%d", file, line))
		}
	} else {
		panic("Assertion failed")
	}
}

// Assert panics when an invariant the caller relies on does not hold.
func Assert(v bool) {
	if !v {
		doPanic(1)
	}
}

func AssertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
