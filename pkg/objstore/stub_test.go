package objstore

import (
	"time"

	"google.golang.org/grpc/codes"
)

// Canonical outcomes used across the tests.
func transientError() Status {
	return NewStatus(codes.Unavailable, "try-again")
}

func permanentError() Status {
	return NewStatus(codes.PermissionDenied, "uh-oh")
}

type stubCall struct {
	status Status
	resp   interface{}
}

// stubClient is a scriptable RawClient: tests queue per-operation
// outcomes and then inspect how many calls each operation received. An
// empty queue yields OK with a nil response.
type stubClient struct {
	opts    ClientOptions
	calls   []string
	results map[string][]stubCall
	// last envelope seen per operation, for request assertions
	lastGetBucketMetadata *GetBucketMetadataRequest
	lastGetObjectMetadata *GetObjectMetadataRequest
	lastListObjects       *ListObjectsRequest
}

func newStubClient() *stubClient {
	return &stubClient{results: make(map[string][]stubCall)}
}

func (m *stubClient) push(op string, status Status, resp interface{}) {
	m.results[op] = append(m.results[op], stubCall{status: status, resp: resp})
}

func (m *stubClient) count(op string) int {
	n := 0
	for _, c := range m.calls {
		if c == op {
			n++
		}
	}
	return n
}

func (m *stubClient) next(op string) stubCall {
	m.calls = append(m.calls, op)
	q := m.results[op]
	if len(q) == 0 {
		return stubCall{status: StatusOK()}
	}
	m.results[op] = q[1:]
	return q[0]
}

func (m *stubClient) Options() *ClientOptions {
	return &m.opts
}

func (m *stubClient) ListBuckets(req *ListBucketsRequest) (Status, *ListBucketsResponse) {
	c := m.next("ListBuckets")
	resp, _ := c.resp.(*ListBucketsResponse)
	return c.status, resp
}

func (m *stubClient) GetBucketMetadata(req *GetBucketMetadataRequest) (Status, *BucketMetadata) {
	m.lastGetBucketMetadata = req
	c := m.next("GetBucketMetadata")
	resp, _ := c.resp.(*BucketMetadata)
	return c.status, resp
}

func (m *stubClient) InsertObjectMedia(req *InsertObjectMediaRequest) (Status, *ObjectMetadata) {
	c := m.next("InsertObjectMedia")
	resp, _ := c.resp.(*ObjectMetadata)
	return c.status, resp
}

func (m *stubClient) GetObjectMetadata(req *GetObjectMetadataRequest) (Status, *ObjectMetadata) {
	m.lastGetObjectMetadata = req
	c := m.next("GetObjectMetadata")
	resp, _ := c.resp.(*ObjectMetadata)
	return c.status, resp
}

func (m *stubClient) ReadObjectRangeMedia(req *ReadObjectRangeRequest) (Status, *ReadObjectRangeResponse) {
	c := m.next("ReadObjectRangeMedia")
	resp, _ := c.resp.(*ReadObjectRangeResponse)
	return c.status, resp
}

func (m *stubClient) ListObjects(req *ListObjectsRequest) (Status, *ListObjectsResponse) {
	m.lastListObjects = req
	c := m.next("ListObjects")
	resp, _ := c.resp.(*ListObjectsResponse)
	return c.status, resp
}

func (m *stubClient) DeleteObject(req *DeleteObjectRequest) (Status, *EmptyResponse) {
	c := m.next("DeleteObject")
	resp, _ := c.resp.(*EmptyResponse)
	return c.status, resp
}

func (m *stubClient) ListObjectAcl(req *ListObjectAclRequest) (Status, *ListObjectAclResponse) {
	c := m.next("ListObjectAcl")
	resp, _ := c.resp.(*ListObjectAclResponse)
	return c.status, resp
}

// noSleepRetryClient builds a RetryClient whose sleeps are recorded, not
// performed.
func noSleepRetryClient(raw RawClient, retry RetryPolicy, backoff BackoffPolicy) (*RetryClient, *[]time.Duration) {
	c := NewRetryClient(raw, retry, backoff)
	slept := &[]time.Duration{}
	c.sleep = func(d time.Duration) { *slept = append(*slept, d) }
	return c, slept
}
