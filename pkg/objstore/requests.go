package objstore

import "fmt"

// formatRequest renders an envelope for log lines: the required fields,
// then any present optional parameters.
func formatRequest(name, fields string, ps *parameterSet) string {
	if params := ps.String(); params != "" {
		return fmt.Sprintf("%s={%s, %s}", name, fields, params)
	}
	return fmt.Sprintf("%s={%s}", name, fields)
}

// Request envelopes. One envelope type per storage verb; the required
// identifying fields are fixed at construction and the optional
// parameters accumulate through Set/SetAll. The same envelope value is
// reissued unmodified on every retry attempt.

// ListBucketsRequest asks for the buckets owned by a project.
type ListBucketsRequest struct {
	parameterSet
	projectID string
}

func NewListBucketsRequest(projectID string) *ListBucketsRequest {
	return &ListBucketsRequest{
		parameterSet: newParameterSet(KindMaxResults, KindPrefix, KindUserProject, KindProjection),
		projectID:    projectID,
	}
}

func (r *ListBucketsRequest) ProjectID() string { return r.projectID }

func (r *ListBucketsRequest) Set(p ListBucketsParam) *ListBucketsRequest {
	r.set(p)
	return r
}

// SetAll applies each parameter in argument order; a later duplicate of
// the same kind overwrites the earlier one.
func (r *ListBucketsRequest) SetAll(params ...ListBucketsParam) *ListBucketsRequest {
	for _, p := range params {
		r.set(p)
	}
	return r
}

func (r *ListBucketsRequest) String() string {
	return formatRequest("ListBucketsRequest", fmt.Sprintf("project_id=%s", r.projectID), &r.parameterSet)
}

// GetBucketMetadataRequest fetches the metadata of one bucket.
type GetBucketMetadataRequest struct {
	parameterSet
	bucketName string
}

func NewGetBucketMetadataRequest(bucketName string) *GetBucketMetadataRequest {
	return &GetBucketMetadataRequest{
		parameterSet: newParameterSet(KindIfMetagenerationMatch, KindIfMetagenerationNotMatch,
			KindUserProject, KindProjection),
		bucketName: bucketName,
	}
}

func (r *GetBucketMetadataRequest) BucketName() string { return r.bucketName }

func (r *GetBucketMetadataRequest) Set(p GetBucketMetadataParam) *GetBucketMetadataRequest {
	r.set(p)
	return r
}

func (r *GetBucketMetadataRequest) SetAll(params ...GetBucketMetadataParam) *GetBucketMetadataRequest {
	for _, p := range params {
		r.set(p)
	}
	return r
}

func (r *GetBucketMetadataRequest) String() string {
	return formatRequest("GetBucketMetadataRequest", fmt.Sprintf("bucket_name=%s", r.bucketName), &r.parameterSet)
}

// InsertObjectMediaRequest creates an object from its full contents.
type InsertObjectMediaRequest struct {
	parameterSet
	bucketName string
	objectName string
	contents   []byte
}

func NewInsertObjectMediaRequest(bucketName, objectName string, contents []byte) *InsertObjectMediaRequest {
	return &InsertObjectMediaRequest{
		parameterSet: newParameterSet(KindIfGenerationMatch, KindIfGenerationNotMatch,
			KindIfMetagenerationMatch, KindIfMetagenerationNotMatch,
			KindUserProject, KindProjection),
		bucketName: bucketName,
		objectName: objectName,
		contents:   contents,
	}
}

func (r *InsertObjectMediaRequest) BucketName() string { return r.bucketName }
func (r *InsertObjectMediaRequest) ObjectName() string { return r.objectName }
func (r *InsertObjectMediaRequest) Contents() []byte   { return r.contents }

func (r *InsertObjectMediaRequest) Set(p InsertObjectMediaParam) *InsertObjectMediaRequest {
	r.set(p)
	return r
}

func (r *InsertObjectMediaRequest) SetAll(params ...InsertObjectMediaParam) *InsertObjectMediaRequest {
	for _, p := range params {
		r.set(p)
	}
	return r
}

func (r *InsertObjectMediaRequest) String() string {
	// Contents are elided: they can be large and are not interesting in
	// a request log line.
	return formatRequest("InsertObjectMediaRequest",
		fmt.Sprintf("bucket_name=%s, object_name=%s, media_size=%d", r.bucketName, r.objectName, len(r.contents)),
		&r.parameterSet)
}

// GetObjectMetadataRequest fetches the metadata of one object.
type GetObjectMetadataRequest struct {
	parameterSet
	bucketName string
	objectName string
}

func NewGetObjectMetadataRequest(bucketName, objectName string) *GetObjectMetadataRequest {
	return &GetObjectMetadataRequest{
		parameterSet: newParameterSet(KindGeneration,
			KindIfGenerationMatch, KindIfGenerationNotMatch,
			KindIfMetagenerationMatch, KindIfMetagenerationNotMatch,
			KindProjection, KindUserProject),
		bucketName: bucketName,
		objectName: objectName,
	}
}

func (r *GetObjectMetadataRequest) BucketName() string { return r.bucketName }
func (r *GetObjectMetadataRequest) ObjectName() string { return r.objectName }

func (r *GetObjectMetadataRequest) Set(p GetObjectMetadataParam) *GetObjectMetadataRequest {
	r.set(p)
	return r
}

func (r *GetObjectMetadataRequest) SetAll(params ...GetObjectMetadataParam) *GetObjectMetadataRequest {
	for _, p := range params {
		r.set(p)
	}
	return r
}

func (r *GetObjectMetadataRequest) String() string {
	return formatRequest("GetObjectMetadataRequest",
		fmt.Sprintf("bucket_name=%s, object_name=%s", r.bucketName, r.objectName), &r.parameterSet)
}

// ListObjectsRequest lists the objects in a bucket.
type ListObjectsRequest struct {
	parameterSet
	bucketName string
}

func NewListObjectsRequest(bucketName string) *ListObjectsRequest {
	return &ListObjectsRequest{
		parameterSet: newParameterSet(KindMaxResults, KindPrefix, KindDelimiter,
			KindUserProject, KindProjection),
		bucketName: bucketName,
	}
}

func (r *ListObjectsRequest) BucketName() string { return r.bucketName }

func (r *ListObjectsRequest) Set(p ListObjectsParam) *ListObjectsRequest {
	r.set(p)
	return r
}

func (r *ListObjectsRequest) SetAll(params ...ListObjectsParam) *ListObjectsRequest {
	for _, p := range params {
		r.set(p)
	}
	return r
}

func (r *ListObjectsRequest) String() string {
	return formatRequest("ListObjectsRequest", fmt.Sprintf("bucket_name=%s", r.bucketName), &r.parameterSet)
}

// ReadObjectRangeRequest reads the byte range [begin, end) of an object.
type ReadObjectRangeRequest struct {
	parameterSet
	bucketName string
	objectName string
	begin      int64
	end        int64
}

func NewReadObjectRangeRequest(bucketName, objectName string, begin, end int64) *ReadObjectRangeRequest {
	return &ReadObjectRangeRequest{
		parameterSet: newParameterSet(KindGeneration,
			KindIfGenerationMatch, KindIfGenerationNotMatch,
			KindIfMetagenerationMatch, KindIfMetagenerationNotMatch,
			KindUserProject),
		bucketName: bucketName,
		objectName: objectName,
		begin:      begin,
		end:        end,
	}
}

func (r *ReadObjectRangeRequest) BucketName() string { return r.bucketName }
func (r *ReadObjectRangeRequest) ObjectName() string { return r.objectName }
func (r *ReadObjectRangeRequest) Begin() int64       { return r.begin }
func (r *ReadObjectRangeRequest) End() int64         { return r.end }

func (r *ReadObjectRangeRequest) Set(p ReadObjectRangeParam) *ReadObjectRangeRequest {
	r.set(p)
	return r
}

func (r *ReadObjectRangeRequest) SetAll(params ...ReadObjectRangeParam) *ReadObjectRangeRequest {
	for _, p := range params {
		r.set(p)
	}
	return r
}

func (r *ReadObjectRangeRequest) String() string {
	return formatRequest("ReadObjectRangeRequest",
		fmt.Sprintf("bucket_name=%s, object_name=%s, begin=%d, end=%d", r.bucketName, r.objectName, r.begin, r.end),
		&r.parameterSet)
}

// DeleteObjectRequest deletes one object.
type DeleteObjectRequest struct {
	parameterSet
	bucketName string
	objectName string
}

func NewDeleteObjectRequest(bucketName, objectName string) *DeleteObjectRequest {
	return &DeleteObjectRequest{
		parameterSet: newParameterSet(KindGeneration,
			KindIfGenerationMatch, KindIfGenerationNotMatch,
			KindIfMetagenerationMatch, KindIfMetagenerationNotMatch,
			KindUserProject),
		bucketName: bucketName,
		objectName: objectName,
	}
}

func (r *DeleteObjectRequest) BucketName() string { return r.bucketName }
func (r *DeleteObjectRequest) ObjectName() string { return r.objectName }

func (r *DeleteObjectRequest) Set(p DeleteObjectParam) *DeleteObjectRequest {
	r.set(p)
	return r
}

func (r *DeleteObjectRequest) SetAll(params ...DeleteObjectParam) *DeleteObjectRequest {
	for _, p := range params {
		r.set(p)
	}
	return r
}

func (r *DeleteObjectRequest) String() string {
	return formatRequest("DeleteObjectRequest",
		fmt.Sprintf("bucket_name=%s, object_name=%s", r.bucketName, r.objectName), &r.parameterSet)
}

// ListObjectAclRequest retrieves the access control list of one object.
type ListObjectAclRequest struct {
	parameterSet
	bucketName string
	objectName string
}

func NewListObjectAclRequest(bucketName, objectName string) *ListObjectAclRequest {
	return &ListObjectAclRequest{
		parameterSet: newParameterSet(KindGeneration, KindUserProject),
		bucketName:   bucketName,
		objectName:   objectName,
	}
}

func (r *ListObjectAclRequest) BucketName() string { return r.bucketName }
func (r *ListObjectAclRequest) ObjectName() string { return r.objectName }

func (r *ListObjectAclRequest) Set(p ListObjectAclParam) *ListObjectAclRequest {
	r.set(p)
	return r
}

func (r *ListObjectAclRequest) SetAll(params ...ListObjectAclParam) *ListObjectAclRequest {
	for _, p := range params {
		r.set(p)
	}
	return r
}

func (r *ListObjectAclRequest) String() string {
	return formatRequest("ListObjectAclRequest",
		fmt.Sprintf("bucket_name=%s, object_name=%s", r.bucketName, r.objectName), &r.parameterSet)
}

// Responses.

// ListBucketsResponse is the first page of buckets for a project.
type ListBucketsResponse struct {
	Items         []BucketMetadata
	NextPageToken string
}

// ListObjectsResponse is the first page of objects in a bucket.
type ListObjectsResponse struct {
	Items         []ObjectMetadata
	NextPageToken string
}

// ReadObjectRangeResponse carries the bytes of a ranged read plus the
// range actually served and the total object size.
type ReadObjectRangeResponse struct {
	Contents   []byte
	FirstByte  int64
	LastByte   int64
	ObjectSize int64
}

// ListObjectAclResponse is the access control entries of one object.
type ListObjectAclResponse struct {
	Items []ObjectAccessControl
}

// EmptyResponse is returned by verbs with no payload, such as DeleteObject.
type EmptyResponse struct{}
