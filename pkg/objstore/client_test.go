package objstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noWait removes the backoff delays so retry scenarios run instantly.
func noWait() ClientOption {
	return WithBackoffPolicy(NewExponentialBackoffPolicy(0, 0))
}

func TestClientGetBucketMetadata(t *testing.T) {
	text := `{
		"kind": "storage#bucket",
		"id": "foo-bar-baz",
		"selfLink": "https://www.googleapis.com/storage/v1/b/foo-bar-baz",
		"projectNumber": "123456789",
		"name": "foo-bar-baz",
		"timeCreated": "2018-05-19T19:31:14Z",
		"updated": "2018-05-19T19:31:24Z",
		"metageneration": "4",
		"location": "US",
		"storageClass": "STANDARD",
		"etag": "XYZ="
	}`
	expected, err := ParseBucketMetadata([]byte(text))
	require.NoError(t, err)

	stub := newStubClient()
	stub.push("GetBucketMetadata", transientError(), nil)
	stub.push("GetBucketMetadata", StatusOK(), expected)

	client := NewClient(stub, WithRetryPolicy(NewLimitedErrorCountRetryPolicy(2)), noWait())

	actual, err := client.GetBucketMetadata("foo-bar-baz")
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
	assert.Equal(t, "foo-bar-baz", stub.lastGetBucketMetadata.BucketName())
	assert.Equal(t, 2, stub.count("GetBucketMetadata"))
}

func TestClientGetBucketMetadataTooManyFailures(t *testing.T) {
	stub := newStubClient()
	stub.push("GetBucketMetadata", transientError(), nil)
	stub.push("GetBucketMetadata", transientError(), nil)
	stub.push("GetBucketMetadata", transientError(), nil)

	client := NewClient(stub, WithRetryPolicy(NewLimitedErrorCountRetryPolicy(2)), noWait())

	_, err := client.GetBucketMetadata("foo-bar-baz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Retry policy exhausted")
	assert.Contains(t, err.Error(), "GetBucketMetadata")
	assert.Equal(t, 3, stub.count("GetBucketMetadata"))
}

func TestClientGetBucketMetadataPermanentFailure(t *testing.T) {
	stub := newStubClient()
	stub.push("GetBucketMetadata", permanentError(), nil)

	client := NewClient(stub, WithRetryPolicy(NewLimitedErrorCountRetryPolicy(2)), noWait())

	_, err := client.GetBucketMetadata("foo-bar-baz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Permanent error")
	assert.Contains(t, err.Error(), "GetBucketMetadata")
	assert.Equal(t, 1, stub.count("GetBucketMetadata"))
}

func TestClientListBucketsDefaultProject(t *testing.T) {
	stub := newStubClient()
	stub.opts = ClientOptions{ProjectID: "default-project"}
	stub.push("ListBuckets", StatusOK(), &ListBucketsResponse{
		Items: []BucketMetadata{{Name: "a"}, {Name: "b"}},
	})

	client := NewClient(stub, noWait())
	buckets, err := client.ListBuckets("")
	require.NoError(t, err)
	assert.Len(t, buckets, 2)
}

func TestClientListObjectsForwardsParams(t *testing.T) {
	stub := newStubClient()
	stub.push("ListObjects", StatusOK(), &ListObjectsResponse{})

	client := NewClient(stub, noWait())
	_, err := client.ListObjects("test-bucket", Prefix("logs/"), MaxResults(10))
	require.NoError(t, err)

	v, ok := stub.lastListObjects.Parameter(KindPrefix)
	require.True(t, ok)
	assert.Equal(t, "logs/", v)
	v, ok = stub.lastListObjects.Parameter(KindMaxResults)
	require.True(t, ok)
	assert.Equal(t, "10", v)
}

func TestClientInsertAndReadAndDelete(t *testing.T) {
	stub := newStubClient()
	stub.push("InsertObjectMedia", StatusOK(), &ObjectMetadata{Bucket: "b", Name: "o", Size: 5})
	stub.push("ReadObjectRangeMedia", StatusOK(), &ReadObjectRangeResponse{
		Contents: []byte("hello"), FirstByte: 0, LastByte: 4, ObjectSize: 5,
	})
	stub.push("DeleteObject", StatusOK(), &EmptyResponse{})

	client := NewClient(stub, noWait())

	meta, err := client.InsertObject("b", "o", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), meta.Size)

	read, err := client.ReadObjectRange("b", "o", 0, 5)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), read.Contents)

	require.NoError(t, client.DeleteObject("b", "o", Generation(7)))
}

func TestClientListObjectAcl(t *testing.T) {
	stub := newStubClient()
	stub.push("ListObjectAcl", StatusOK(), &ListObjectAclResponse{
		Items: []ObjectAccessControl{{Entity: "user-test", Role: "OWNER"}},
	})

	client := NewClient(stub, noWait())
	acls, err := client.ListObjectAcl("b", "o")
	require.NoError(t, err)
	require.Len(t, acls, 1)
	assert.Equal(t, "OWNER", acls[0].Role)
}

func TestClientWithoutRetrySingleAttempt(t *testing.T) {
	stub := newStubClient()
	stub.push("GetBucketMetadata", transientError(), nil)

	client := NewClient(stub, WithoutRetry())
	_, err := client.GetBucketMetadata("foo-bar-baz")
	require.Error(t, err)
	assert.Equal(t, 1, stub.count("GetBucketMetadata"))
}
