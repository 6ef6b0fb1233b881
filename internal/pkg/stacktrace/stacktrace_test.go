package stacktrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternalPaths(t *testing.T) {
	stack := []byte(`goroutine 1 [running]:
runtime/debug.Stack()
	/usr/local/go/src/runtime/debug/stack.go:26 +0x5e
github.com/shandysiswandi/ayola/internal/session/usecase.(*Usecase).OtpDigit(...)
	/src/ayola/internal/session/usecase/otp.go:41 +0x1a
github.com/shandysiswandi/ayola/internal/otpentry.(*Controller).EnterDigit(...)
	/src/ayola/internal/otpentry/controller.go:120
`)

	assert.Equal(t, []string{
		"internal/session/usecase/otp.go:41",
		"internal/otpentry/controller.go:120",
	}, InternalPaths(stack))
}

func TestInternalPaths_None(t *testing.T) {
	assert.Empty(t, InternalPaths([]byte("goroutine 1 [running]:\nmain.main()\n\t/src/main.go:10 +0x1\n")))
}
