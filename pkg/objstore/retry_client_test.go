package objstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	stub := newStubClient()
	expected := &BucketMetadata{Name: "foo-bar-baz"}
	stub.push("GetBucketMetadata", transientError(), nil)
	stub.push("GetBucketMetadata", transientError(), nil)
	stub.push("GetBucketMetadata", StatusOK(), expected)

	client, _ := noSleepRetryClient(stub, NewLimitedErrorCountRetryPolicy(3), nil)
	status, resp := client.GetBucketMetadata(NewGetBucketMetadataRequest("foo-bar-baz"))

	assert.True(t, status.OK())
	assert.Equal(t, expected, resp)
	assert.Equal(t, 3, stub.count("GetBucketMetadata"))
}

func TestRetryPermanentErrorReturnsImmediately(t *testing.T) {
	stub := newStubClient()
	stub.push("GetObjectMetadata", permanentError(), nil)

	client, slept := noSleepRetryClient(stub, NewLimitedErrorCountRetryPolicy(3), nil)
	status, resp := client.GetObjectMetadata(NewGetObjectMetadataRequest("b", "o"))

	assert.True(t, status.Permanent())
	assert.False(t, status.Exhausted)
	assert.Nil(t, resp)
	assert.Contains(t, status.Message, "Permanent error in GetObjectMetadata")
	assert.Contains(t, status.Message, "uh-oh")
	assert.Equal(t, 1, stub.count("GetObjectMetadata"))
	assert.Empty(t, *slept)
}

func TestRetryPolicyExhaustion(t *testing.T) {
	// With a limit of 2 failures, the third transient error terminates:
	// limit+1 total calls.
	stub := newStubClient()
	stub.push("GetBucketMetadata", transientError(), nil)
	stub.push("GetBucketMetadata", transientError(), nil)
	stub.push("GetBucketMetadata", transientError(), nil)

	client, slept := noSleepRetryClient(stub, NewLimitedErrorCountRetryPolicy(2), nil)
	status, _ := client.GetBucketMetadata(NewGetBucketMetadataRequest("foo-bar-baz"))

	require.False(t, status.OK())
	assert.True(t, status.Exhausted)
	assert.Contains(t, status.Message, "Retry policy exhausted in GetBucketMetadata")
	assert.Contains(t, status.Message, "try-again")
	assert.Equal(t, 3, stub.count("GetBucketMetadata"))
	// One backoff wait between each pair of attempts.
	assert.Len(t, *slept, 2)
}

func TestRetryReissuesSameEnvelope(t *testing.T) {
	stub := newStubClient()
	stub.push("GetBucketMetadata", transientError(), nil)
	stub.push("GetBucketMetadata", StatusOK(), &BucketMetadata{Name: "foo-bar-baz"})

	client, _ := noSleepRetryClient(stub, NewLimitedErrorCountRetryPolicy(2), nil)
	req := NewGetBucketMetadataRequest("foo-bar-baz").Set(UserProject("billed"))
	client.GetBucketMetadata(req)

	// The transport saw the very same envelope, parameters intact.
	require.Same(t, req, stub.lastGetBucketMetadata)
	v, ok := stub.lastGetBucketMetadata.Parameter(KindUserProject)
	assert.True(t, ok)
	assert.Equal(t, "billed", v)
}

func TestRetryPoliciesClonedPerCall(t *testing.T) {
	// Two sequential calls each get their own failure budget; state from
	// the first call must not leak into the second.
	stub := newStubClient()
	stub.push("DeleteObject", transientError(), nil)
	stub.push("DeleteObject", StatusOK(), &EmptyResponse{})
	stub.push("DeleteObject", transientError(), nil)
	stub.push("DeleteObject", StatusOK(), &EmptyResponse{})

	client, _ := noSleepRetryClient(stub, NewLimitedErrorCountRetryPolicy(1), nil)
	status, _ := client.DeleteObject(NewDeleteObjectRequest("b", "o"))
	assert.True(t, status.OK())
	status, _ = client.DeleteObject(NewDeleteObjectRequest("b", "o"))
	assert.True(t, status.OK())
	assert.Equal(t, 4, stub.count("DeleteObject"))
}

func TestRetryAllOperationsForwarded(t *testing.T) {
	stub := newStubClient()
	client, _ := noSleepRetryClient(stub, nil, nil)

	status, _ := client.ListBuckets(NewListBucketsRequest("p"))
	assert.True(t, status.OK())
	status, _ = client.InsertObjectMedia(NewInsertObjectMediaRequest("b", "o", []byte("hi")))
	assert.True(t, status.OK())
	status, _ = client.ReadObjectRangeMedia(NewReadObjectRangeRequest("b", "o", 0, 10))
	assert.True(t, status.OK())
	status, _ = client.ListObjects(NewListObjectsRequest("b"))
	assert.True(t, status.OK())
	status, _ = client.ListObjectAcl(NewListObjectAclRequest("b", "o"))
	assert.True(t, status.OK())
	assert.Equal(t, 5, len(stub.calls))
}

func TestLimitedTimeRetryPolicy(t *testing.T) {
	now := time.Unix(1000, 0)
	proto := NewLimitedTimeRetryPolicy(10 * time.Second)
	proto.now = func() time.Time { return now }

	p := proto.Clone()
	assert.True(t, p.OnFailure(transientError()))
	now = now.Add(5 * time.Second)
	assert.True(t, p.OnFailure(transientError()))
	now = now.Add(6 * time.Second)
	assert.False(t, p.OnFailure(transientError()))
}

func TestLimitedTimeRetryPolicyDeadlineFromClone(t *testing.T) {
	// The budget starts when the per-call clone is made, not when the
	// prototype was constructed.
	now := time.Unix(1000, 0)
	proto := NewLimitedTimeRetryPolicy(10 * time.Second)
	proto.now = func() time.Time { return now }

	now = now.Add(time.Hour)
	p := proto.Clone()
	assert.True(t, p.OnFailure(transientError()))
}

func TestLimitedErrorCountAttemptBudget(t *testing.T) {
	p := NewLimitedErrorCountRetryPolicy(2).Clone()
	assert.True(t, p.OnFailure(transientError()))
	assert.True(t, p.OnFailure(transientError()))
	assert.False(t, p.OnFailure(transientError()))
}
