package objstore

import "fmt"

// LoggingClient decorates a RawClient, logging one line for the request
// and one line for the result of every call it forwards. It is a pure
// observer: status and response pass through untouched, and it never
// retries. Stacked below a RetryClient it logs every attempt; stacked
// above one it sees only the final, post-retry outcome.
type LoggingClient struct {
	client RawClient
	log    Logger
}

// NewLoggingClient decorates client, writing through log. The logger must
// be safe for concurrent use; logrus loggers are.
func NewLoggingClient(client RawClient, log Logger) *LoggingClient {
	return &LoggingClient{client: client, log: log}
}

func (c *LoggingClient) Options() *ClientOptions {
	return c.client.Options()
}

// loggedCall wraps one delegated operation with its request and response
// log lines.
func loggedCall[Req fmt.Stringer, Resp any](c *LoggingClient, op string, req Req,
	call func(Req) (Status, Resp)) (Status, Resp) {

	c.log.Infof("%s << %s", op, req)
	status, resp := call(req)
	c.log.Infof("%s >> status={%s}, payload={%v}", op, status, resp)
	return status, resp
}

func (c *LoggingClient) ListBuckets(req *ListBucketsRequest) (Status, *ListBucketsResponse) {
	return loggedCall(c, "ListBuckets", req, c.client.ListBuckets)
}

func (c *LoggingClient) GetBucketMetadata(req *GetBucketMetadataRequest) (Status, *BucketMetadata) {
	return loggedCall(c, "GetBucketMetadata", req, c.client.GetBucketMetadata)
}

func (c *LoggingClient) InsertObjectMedia(req *InsertObjectMediaRequest) (Status, *ObjectMetadata) {
	return loggedCall(c, "InsertObjectMedia", req, c.client.InsertObjectMedia)
}

func (c *LoggingClient) GetObjectMetadata(req *GetObjectMetadataRequest) (Status, *ObjectMetadata) {
	return loggedCall(c, "GetObjectMetadata", req, c.client.GetObjectMetadata)
}

func (c *LoggingClient) ReadObjectRangeMedia(req *ReadObjectRangeRequest) (Status, *ReadObjectRangeResponse) {
	return loggedCall(c, "ReadObjectRangeMedia", req, c.client.ReadObjectRangeMedia)
}

func (c *LoggingClient) ListObjects(req *ListObjectsRequest) (Status, *ListObjectsResponse) {
	return loggedCall(c, "ListObjects", req, c.client.ListObjects)
}

func (c *LoggingClient) DeleteObject(req *DeleteObjectRequest) (Status, *EmptyResponse) {
	return loggedCall(c, "DeleteObject", req, c.client.DeleteObject)
}

func (c *LoggingClient) ListObjectAcl(req *ListObjectAclRequest) (Status, *ListObjectAclResponse) {
	return loggedCall(c, "ListObjectAcl", req, c.client.ListObjectAcl)
}
