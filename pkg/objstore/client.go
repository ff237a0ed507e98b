package objstore

import (
	"github.com/pkg/errors"
)

// Client is the user-facing facade. It assembles the decorator chain over
// a transport's RawClient and exposes one ergonomic method per verb,
// converting a non-OK final Status into an error.
type Client struct {
	raw RawClient
}

type clientConfig struct {
	retry   RetryPolicy
	backoff BackoffPolicy
	log     Logger
	noRetry bool
}

// ClientOption customizes the decorator chain built by NewClient.
type ClientOption func(*clientConfig)

// WithRetryPolicy overrides the default retry policy (three transient
// failures per call).
func WithRetryPolicy(p RetryPolicy) ClientOption {
	return func(c *clientConfig) { c.retry = p }
}

// WithBackoffPolicy overrides the default backoff (exponential, 250ms to
// 32s).
func WithBackoffPolicy(p BackoffPolicy) ClientOption {
	return func(c *clientConfig) { c.backoff = p }
}

// WithLogger inserts a LoggingClient below the retry layer, so that every
// attempt is logged, not just the final outcome.
func WithLogger(log Logger) ClientOption {
	return func(c *clientConfig) { c.log = log }
}

// WithoutRetry disables the retry layer; every call maps to exactly one
// transport exchange.
func WithoutRetry() ClientOption {
	return func(c *clientConfig) { c.noRetry = true }
}

// NewClient builds a facade over raw. The default chain retries transient
// failures with the default policies and performs no logging.
func NewClient(raw RawClient, opts ...ClientOption) *Client {
	cfg := clientConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	chain := raw
	if cfg.log != nil {
		chain = NewLoggingClient(chain, cfg.log)
	}
	if !cfg.noRetry {
		chain = NewRetryClient(chain, cfg.retry, cfg.backoff)
	}
	return &Client{raw: chain}
}

// Raw exposes the top of the decorator chain for callers that need the
// envelope-level interface directly.
func (c *Client) Raw() RawClient {
	return c.raw
}

func (c *Client) Options() *ClientOptions {
	return c.raw.Options()
}

func statusError(s Status) error {
	return errors.New(s.Message)
}

// ListBuckets fetches the buckets of a project. An empty projectID falls
// back to the ProjectID in the client options.
func (c *Client) ListBuckets(projectID string, params ...ListBucketsParam) ([]BucketMetadata, error) {
	if projectID == "" {
		projectID = c.raw.Options().ProjectID
	}
	req := NewListBucketsRequest(projectID).SetAll(params...)
	status, resp := c.raw.ListBuckets(req)
	if !status.OK() {
		return nil, statusError(status)
	}
	return resp.Items, nil
}

// GetBucketMetadata fetches the metadata of one bucket.
func (c *Client) GetBucketMetadata(bucketName string, params ...GetBucketMetadataParam) (*BucketMetadata, error) {
	req := NewGetBucketMetadataRequest(bucketName).SetAll(params...)
	status, resp := c.raw.GetBucketMetadata(req)
	if !status.OK() {
		return nil, statusError(status)
	}
	return resp, nil
}

// InsertObject creates an object from its full contents and returns the
// resulting metadata.
func (c *Client) InsertObject(bucketName, objectName string, contents []byte,
	params ...InsertObjectMediaParam) (*ObjectMetadata, error) {
	req := NewInsertObjectMediaRequest(bucketName, objectName, contents).SetAll(params...)
	status, resp := c.raw.InsertObjectMedia(req)
	if !status.OK() {
		return nil, statusError(status)
	}
	return resp, nil
}

// GetObjectMetadata fetches the metadata of one object.
func (c *Client) GetObjectMetadata(bucketName, objectName string,
	params ...GetObjectMetadataParam) (*ObjectMetadata, error) {
	req := NewGetObjectMetadataRequest(bucketName, objectName).SetAll(params...)
	status, resp := c.raw.GetObjectMetadata(req)
	if !status.OK() {
		return nil, statusError(status)
	}
	return resp, nil
}

// ListObjects lists the objects in a bucket.
func (c *Client) ListObjects(bucketName string, params ...ListObjectsParam) ([]ObjectMetadata, error) {
	req := NewListObjectsRequest(bucketName).SetAll(params...)
	status, resp := c.raw.ListObjects(req)
	if !status.OK() {
		return nil, statusError(status)
	}
	return resp.Items, nil
}

// ReadObjectRange reads the byte range [begin, end) of an object.
func (c *Client) ReadObjectRange(bucketName, objectName string, begin, end int64,
	params ...ReadObjectRangeParam) (*ReadObjectRangeResponse, error) {
	req := NewReadObjectRangeRequest(bucketName, objectName, begin, end).SetAll(params...)
	status, resp := c.raw.ReadObjectRangeMedia(req)
	if !status.OK() {
		return nil, statusError(status)
	}
	return resp, nil
}

// DeleteObject deletes one object.
func (c *Client) DeleteObject(bucketName, objectName string, params ...DeleteObjectParam) error {
	req := NewDeleteObjectRequest(bucketName, objectName).SetAll(params...)
	status, _ := c.raw.DeleteObject(req)
	if !status.OK() {
		return statusError(status)
	}
	return nil
}

// ListObjectAcl retrieves the access control entries of one object.
func (c *Client) ListObjectAcl(bucketName, objectName string,
	params ...ListObjectAclParam) ([]ObjectAccessControl, error) {
	req := NewListObjectAclRequest(bucketName, objectName).SetAll(params...)
	status, resp := c.raw.ListObjectAcl(req)
	if !status.OK() {
		return nil, statusError(status)
	}
	return resp.Items, nil
}
