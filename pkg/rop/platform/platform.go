package platform

import (
	"fmt"
	"maps"
	"net/http"

	perrors "github.com/jmgilman/go/errors"

	"github.com/ib-77/ropx/pkg/rop"
)

const (
	FieldContextID  = "context_id"
	FieldCallerFile = "caller_file"
	FieldCallerLine = "caller_line"
	FieldStatus     = "status"
	FieldSource     = "source"
	FieldDetail     = "detail"
)

var statusCodes = map[int]perrors.ErrorCode{
	http.StatusBadRequest:          perrors.CodeInvalidInput,
	http.StatusUnauthorized:        perrors.CodeUnauthorized,
	http.StatusForbidden:           perrors.CodeForbidden,
	http.StatusNotFound:            perrors.CodeNotFound,
	http.StatusConflict:            perrors.CodeConflict,
	http.StatusTooManyRequests:     perrors.CodeRateLimit,
	http.StatusInternalServerError: perrors.CodeInternal,
	http.StatusNotImplemented:      perrors.CodeNotImplemented,
	http.StatusServiceUnavailable:  perrors.CodeUnavailable,
	http.StatusGatewayTimeout:      perrors.CodeTimeout,
}

var codeStatuses = func() map[perrors.ErrorCode]int {
	out := make(map[perrors.ErrorCode]int, len(statusCodes))
	for status, code := range statusCodes {
		out[code] = status
	}
	return out
}()

// New returns an executor whose default error factory is Build.
func New(opts ...rop.Option) *rop.Executor[perrors.PlatformError] {
	return rop.New(Build, opts...)
}

// Build implements rop.Builder.
func Build(ctx rop.Context, args ...any) perrors.PlatformError {
	cause := ctx.Err()
	code := defaultCode(cause)
	status := 0
	fields := make(map[string]any)

	for i := 0; i < len(args); i++ {
		switch arg := args[i].(type) {
		case int:
			status = arg
			if c, ok := statusCodes[arg]; ok {
				code = c
			}
		case perrors.ErrorCode:
			code = arg
		case map[string]any:
			maps.Copy(fields, arg)
		case string:
			if i+1 < len(args) {
				fields[arg] = args[i+1]
				i++
			} else {
				fields[FieldDetail] = arg
			}
		default:
			fields[fmt.Sprintf("arg%d", i)] = arg
		}
	}

	message, ok := ctx.Message()
	if !ok {
		message = describe(ctx.Source())
	}

	var err perrors.PlatformError
	if cause != nil {
		err = perrors.Wrap(cause, code, message)
	} else {
		err = perrors.New(code, message)
		if !rop.IsNil(ctx.Source()) {
			fields[FieldSource] = fmt.Sprint(ctx.Source())
		}
	}

	fields[FieldContextID] = ctx.ID().String()
	if c := ctx.Caller(); !c.IsZero() {
		fields[FieldCallerFile] = c.File
		fields[FieldCallerLine] = c.Line
	}
	if status != 0 {
		fields[FieldStatus] = status
	}

	return perrors.WithContextMap(err, fields)
}

func defaultCode(cause error) perrors.ErrorCode {
	switch {
	case cause == nil:
		return perrors.CodeInternal
	case rop.IsCancellationError(cause):
		return perrors.CodeTimeout
	default:
		// keeps the code of a wrapped PlatformError, CodeUnknown otherwise
		return perrors.GetCode(cause)
	}
}

func describe(source any) string {
	if rop.IsNil(source) {
		return "unexpected empty value"
	}
	if err, ok := source.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("unexpected value: %v", source)
}

// Status returns the HTTP-like status for err: the status attached by Build
// when present, otherwise the one mapped from its code. Unknown codes map to
// 500 and a nil error to 200.
func Status(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var pe perrors.PlatformError
	if perrors.As(err, &pe) {
		if status, ok := pe.Context()[FieldStatus].(int); ok {
			return status
		}
	}

	if status, ok := codeStatuses[perrors.GetCode(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Response pairs Status with the serializable form of err.
func Response(err error) (int, *perrors.ErrorResponse) {
	return Status(err), perrors.ToJSON(err)
}
