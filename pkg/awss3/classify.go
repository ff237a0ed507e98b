package awss3

import (
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"google.golang.org/grpc/codes"

	"github.com/objstoreresearch/osk/pkg/objstore"
)

// transientAwsCodes are SDK error codes safe to reissue: throttling,
// timeouts, and connection-level failures.
var transientAwsCodes = map[string]codes.Code{
	"SlowDown":                      codes.ResourceExhausted,
	"Throttling":                    codes.ResourceExhausted,
	"ThrottlingException":           codes.ResourceExhausted,
	"RequestLimitExceeded":          codes.ResourceExhausted,
	"RequestTimeout":                codes.DeadlineExceeded,
	"RequestCanceled":               codes.DeadlineExceeded,
	"ServiceUnavailable":            codes.Unavailable,
	"InternalError":                 codes.Internal,
	request.ErrCodeRequestError:    codes.Unavailable,
	request.ErrCodeResponseTimeout: codes.DeadlineExceeded,
}

var permanentAwsCodes = map[string]codes.Code{
	"NoSuchBucket":          codes.NotFound,
	"NoSuchKey":             codes.NotFound,
	"NotFound":              codes.NotFound,
	"AccessDenied":          codes.PermissionDenied,
	"InvalidAccessKeyId":    codes.Unauthenticated,
	"SignatureDoesNotMatch": codes.Unauthenticated,
	"ExpiredToken":          codes.Unauthenticated,
	"InvalidArgument":       codes.InvalidArgument,
	"MalformedXML":          codes.InvalidArgument,
	"BucketAlreadyExists":   codes.AlreadyExists,
	"PreconditionFailed":    codes.FailedPrecondition,
}

// classify maps an SDK error onto the access layer's Status taxonomy. The
// transport owns classification; the retry layer only consumes it.
func classify(err error) objstore.Status {
	if err == nil {
		return objstore.StatusOK()
	}
	if aerr, ok := err.(awserr.Error); ok {
		if code, ok := transientAwsCodes[aerr.Code()]; ok {
			return objstore.NewStatus(code, aerr.Message())
		}
		if code, ok := permanentAwsCodes[aerr.Code()]; ok {
			return objstore.NewStatus(code, aerr.Message())
		}
		if rf, ok := err.(awserr.RequestFailure); ok {
			switch {
			case rf.StatusCode() == 404:
				return objstore.NewStatus(codes.NotFound, aerr.Message())
			case rf.StatusCode() == 429:
				return objstore.NewStatus(codes.ResourceExhausted, aerr.Message())
			case rf.StatusCode() >= 500:
				return objstore.NewStatus(codes.Unavailable, aerr.Message())
			}
		}
		return objstore.NewStatus(codes.Unknown, aerr.Message())
	}
	// Errors below the SDK (DNS, TCP resets) are worth another attempt.
	return objstore.NewStatus(codes.Unavailable, err.Error())
}
