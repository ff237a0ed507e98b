package objstore

import (
	"fmt"
	"time"
)

// RetryClient decorates a RawClient with retry-on-transient-failure
// behavior. Permanent errors surface immediately; transient errors are
// retried under a RetryPolicy with waits computed by a BackoffPolicy.
// Both policies are prototypes: a fresh clone is made per top-level call,
// so concurrent calls through one RetryClient never share attempt state.
//
// The same request envelope is reissued unmodified on every attempt. The
// service is assumed to treat retryable verbs idempotently; callers must
// not rely on exactly-once execution for writes issued under retry.
type RetryClient struct {
	client  RawClient
	retry   RetryPolicy
	backoff BackoffPolicy
	sleep   func(time.Duration)
}

// NewRetryClient decorates client. A nil retry or backoff selects the
// default policy (three transient failures, truncated exponential backoff
// from 250ms to 32s).
func NewRetryClient(client RawClient, retry RetryPolicy, backoff BackoffPolicy) *RetryClient {
	if retry == nil {
		retry = NewLimitedErrorCountRetryPolicy(3)
	}
	if backoff == nil {
		backoff = NewExponentialBackoffPolicy(250*time.Millisecond, 32*time.Second)
	}
	return &RetryClient{
		client:  client,
		retry:   retry,
		backoff: backoff,
		sleep:   time.Sleep,
	}
}

func (c *RetryClient) Options() *ClientOptions {
	return c.client.Options()
}

// resilientCall runs the retry state machine around one RawClient
// operation. It blocks the calling goroutine for the backoff between
// attempts; cancellation of an attempt already in flight is the
// transport's concern, not ours.
func resilientCall[Req any, Resp any](c *RetryClient, op string, req Req,
	call func(Req) (Status, Resp)) (Status, Resp) {

	retry := c.retry.Clone()
	backoff := c.backoff.Clone()
	for {
		status, resp := call(req)
		if status.OK() {
			return status, resp
		}
		if status.Permanent() {
			status.Message = fmt.Sprintf("Permanent error in %s: %s", op, status.Message)
			return status, resp
		}
		if !retry.OnFailure(status) {
			status.Exhausted = true
			status.Message = fmt.Sprintf("Retry policy exhausted in %s: %s", op, status.Message)
			return status, resp
		}
		c.sleep(backoff.Delay())
	}
}

func (c *RetryClient) ListBuckets(req *ListBucketsRequest) (Status, *ListBucketsResponse) {
	return resilientCall(c, "ListBuckets", req, c.client.ListBuckets)
}

func (c *RetryClient) GetBucketMetadata(req *GetBucketMetadataRequest) (Status, *BucketMetadata) {
	return resilientCall(c, "GetBucketMetadata", req, c.client.GetBucketMetadata)
}

func (c *RetryClient) InsertObjectMedia(req *InsertObjectMediaRequest) (Status, *ObjectMetadata) {
	return resilientCall(c, "InsertObjectMedia", req, c.client.InsertObjectMedia)
}

func (c *RetryClient) GetObjectMetadata(req *GetObjectMetadataRequest) (Status, *ObjectMetadata) {
	return resilientCall(c, "GetObjectMetadata", req, c.client.GetObjectMetadata)
}

func (c *RetryClient) ReadObjectRangeMedia(req *ReadObjectRangeRequest) (Status, *ReadObjectRangeResponse) {
	return resilientCall(c, "ReadObjectRangeMedia", req, c.client.ReadObjectRangeMedia)
}

func (c *RetryClient) ListObjects(req *ListObjectsRequest) (Status, *ListObjectsResponse) {
	return resilientCall(c, "ListObjects", req, c.client.ListObjects)
}

func (c *RetryClient) DeleteObject(req *DeleteObjectRequest) (Status, *EmptyResponse) {
	return resilientCall(c, "DeleteObject", req, c.client.DeleteObject)
}

func (c *RetryClient) ListObjectAcl(req *ListObjectAclRequest) (Status, *ListObjectAclResponse) {
	return resilientCall(c, "ListObjectAcl", req, c.client.ListObjectAcl)
}
