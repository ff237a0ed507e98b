package objstore

import "github.com/sirupsen/logrus"

// Logger is the logging interface every component of the access layer
// accepts. logrus satisfies it; callers may inject anything compatible.
type Logger = logrus.FieldLogger

// ClientOptions are the transport-level settings shared by every
// decorator in a client chain. They are read-only after construction and
// safe to share across concurrent calls.
type ClientOptions struct {
	// ProjectID is the default project for bucket listings.
	ProjectID string
	// Region of the storage service.
	Region string
	// Endpoint overrides the service endpoint, e.g. for S3-compatible
	// stores or local test servers. Empty means the provider default.
	Endpoint string
}

// RawClient is the transport-facing capability: one method per storage
// verb, each taking the verb's request envelope and returning a
// classified Status with the response. Implementations never retry and
// never log; they only perform the exchange and classify the outcome.
// A nil response accompanies any non-OK status.
type RawClient interface {
	Options() *ClientOptions

	ListBuckets(req *ListBucketsRequest) (Status, *ListBucketsResponse)
	GetBucketMetadata(req *GetBucketMetadataRequest) (Status, *BucketMetadata)
	InsertObjectMedia(req *InsertObjectMediaRequest) (Status, *ObjectMetadata)
	GetObjectMetadata(req *GetObjectMetadataRequest) (Status, *ObjectMetadata)
	ReadObjectRangeMedia(req *ReadObjectRangeRequest) (Status, *ReadObjectRangeResponse)
	ListObjects(req *ListObjectsRequest) (Status, *ListObjectsResponse)
	DeleteObject(req *DeleteObjectRequest) (Status, *EmptyResponse)
	ListObjectAcl(req *ListObjectAclRequest) (Status, *ListObjectAclResponse)
}
