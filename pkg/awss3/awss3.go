// AWS S3 transport for the object storage access layer. Implements the
// objstore.RawClient interface against S3 and S3-compatible endpoints.
//
// Per the RawClient contract this package never retries and never logs;
// it performs one exchange per call and classifies the outcome.

package awss3

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"

	"github.com/objstoreresearch/osk/pkg/objstore"
)

type Client struct {
	s3   *s3.S3
	opts *objstore.ClientOptions
}

var _ objstore.RawClient = (*Client)(nil)

// NewClient builds an S3-backed RawClient. Credentials come from the SDK
// default chain (environment, shared config, instance profile). A
// non-empty Endpoint in opts selects path-style addressing for
// S3-compatible stores and local test servers.
func NewClient(opts *objstore.ClientOptions) (*Client, error) {
	cfg := &aws.Config{}
	if opts.Region != "" {
		cfg.Region = aws.String(opts.Region)
	}
	if opts.Endpoint != "" {
		cfg.Endpoint = aws.String(opts.Endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create AWS session")
	}
	return &Client{s3: s3.New(sess), opts: opts}, nil
}

func (c *Client) Options() *objstore.ClientOptions {
	return c.opts
}

func (c *Client) ListBuckets(req *objstore.ListBucketsRequest) (objstore.Status, *objstore.ListBucketsResponse) {
	out, err := c.s3.ListBuckets(&s3.ListBucketsInput{})
	if err != nil {
		return classify(err), nil
	}

	// S3 has no server-side bucket filters; prefix and maxResults apply
	// here so the envelope behaves the same on every transport.
	prefix, _ := req.Parameter(objstore.KindPrefix)
	max := int64(-1)
	if v, ok := req.Parameter(objstore.KindMaxResults); ok {
		max, _ = strconv.ParseInt(v, 10, 64)
	}

	resp := &objstore.ListBucketsResponse{}
	for _, b := range out.Buckets {
		name := aws.StringValue(b.Name)
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}
		if max >= 0 && int64(len(resp.Items)) >= max {
			break
		}
		resp.Items = append(resp.Items, objstore.BucketMetadata{
			ID:          name,
			Name:        name,
			TimeCreated: aws.TimeValue(b.CreationDate).Format("2006-01-02T15:04:05Z"),
		})
	}
	return objstore.StatusOK(), resp
}

func (c *Client) GetBucketMetadata(req *objstore.GetBucketMetadataRequest) (objstore.Status, *objstore.BucketMetadata) {
	bucket := aws.String(req.BucketName())
	if _, err := c.s3.HeadBucket(&s3.HeadBucketInput{Bucket: bucket}); err != nil {
		return classify(err), nil
	}
	loc, err := c.s3.GetBucketLocation(&s3.GetBucketLocationInput{Bucket: bucket})
	if err != nil {
		return classify(err), nil
	}

	region := aws.StringValue(loc.LocationConstraint)
	if region == "" {
		// S3 reports us-east-1 as an empty constraint.
		region = "us-east-1"
	}
	return objstore.StatusOK(), &objstore.BucketMetadata{
		ID:           req.BucketName(),
		Name:         req.BucketName(),
		Location:     region,
		StorageClass: "STANDARD",
	}
}

func (c *Client) InsertObjectMedia(req *objstore.InsertObjectMediaRequest) (objstore.Status, *objstore.ObjectMetadata) {
	out, err := c.s3.PutObject(&s3.PutObjectInput{
		Bucket: aws.String(req.BucketName()),
		Key:    aws.String(req.ObjectName()),
		Body:   bytes.NewReader(req.Contents()),
	})
	if err != nil {
		return classify(err), nil
	}
	return objstore.StatusOK(), &objstore.ObjectMetadata{
		Bucket: req.BucketName(),
		Name:   req.ObjectName(),
		Size:   int64(len(req.Contents())),
		Etag:   strings.Trim(aws.StringValue(out.ETag), `"`),
	}
}

func (c *Client) GetObjectMetadata(req *objstore.GetObjectMetadataRequest) (objstore.Status, *objstore.ObjectMetadata) {
	out, err := c.s3.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(req.BucketName()),
		Key:    aws.String(req.ObjectName()),
	})
	if err != nil {
		return classify(err), nil
	}
	return objstore.StatusOK(), &objstore.ObjectMetadata{
		Bucket:      req.BucketName(),
		Name:        req.ObjectName(),
		Size:        aws.Int64Value(out.ContentLength),
		ContentType: aws.StringValue(out.ContentType),
		Etag:        strings.Trim(aws.StringValue(out.ETag), `"`),
		Updated:     aws.TimeValue(out.LastModified).Format("2006-01-02T15:04:05Z"),
	}
}

func (c *Client) ReadObjectRangeMedia(req *objstore.ReadObjectRangeRequest) (objstore.Status, *objstore.ReadObjectRangeResponse) {
	// HTTP ranges are inclusive; the envelope's [begin, end) is not.
	out, err := c.s3.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(req.BucketName()),
		Key:    aws.String(req.ObjectName()),
		Range:  aws.String(fmt.Sprintf("bytes=%d-%d", req.Begin(), req.End()-1)),
	})
	if err != nil {
		return classify(err), nil
	}
	defer out.Body.Close()

	contents, err := ioutil.ReadAll(out.Body)
	if err != nil {
		return classify(err), nil
	}

	resp := &objstore.ReadObjectRangeResponse{
		Contents:  contents,
		FirstByte: req.Begin(),
		LastByte:  req.Begin() + int64(len(contents)) - 1,
	}
	// "bytes start-end/total"
	if cr := aws.StringValue(out.ContentRange); cr != "" {
		if i := strings.LastIndex(cr, "/"); i >= 0 {
			resp.ObjectSize, _ = strconv.ParseInt(cr[i+1:], 10, 64)
		}
	}
	return objstore.StatusOK(), resp
}

func (c *Client) ListObjects(req *objstore.ListObjectsRequest) (objstore.Status, *objstore.ListObjectsResponse) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(req.BucketName())}
	if v, ok := req.Parameter(objstore.KindPrefix); ok {
		input.Prefix = aws.String(v)
	}
	if v, ok := req.Parameter(objstore.KindDelimiter); ok {
		input.Delimiter = aws.String(v)
	}
	if v, ok := req.Parameter(objstore.KindMaxResults); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			input.MaxKeys = aws.Int64(n)
		}
	}

	out, err := c.s3.ListObjectsV2(input)
	if err != nil {
		return classify(err), nil
	}

	resp := &objstore.ListObjectsResponse{
		NextPageToken: aws.StringValue(out.NextContinuationToken),
	}
	for _, obj := range out.Contents {
		resp.Items = append(resp.Items, objstore.ObjectMetadata{
			Bucket:       req.BucketName(),
			Name:         aws.StringValue(obj.Key),
			Size:         aws.Int64Value(obj.Size),
			StorageClass: aws.StringValue(obj.StorageClass),
			Etag:         strings.Trim(aws.StringValue(obj.ETag), `"`),
			Updated:      aws.TimeValue(obj.LastModified).Format("2006-01-02T15:04:05Z"),
		})
	}
	return objstore.StatusOK(), resp
}

func (c *Client) DeleteObject(req *objstore.DeleteObjectRequest) (objstore.Status, *objstore.EmptyResponse) {
	_, err := c.s3.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(req.BucketName()),
		Key:    aws.String(req.ObjectName()),
	})
	if err != nil {
		return classify(err), nil
	}
	return objstore.StatusOK(), &objstore.EmptyResponse{}
}

func (c *Client) ListObjectAcl(req *objstore.ListObjectAclRequest) (objstore.Status, *objstore.ListObjectAclResponse) {
	out, err := c.s3.GetObjectAcl(&s3.GetObjectAclInput{
		Bucket: aws.String(req.BucketName()),
		Key:    aws.String(req.ObjectName()),
	})
	if err != nil {
		return classify(err), nil
	}

	resp := &objstore.ListObjectAclResponse{}
	for _, grant := range out.Grants {
		acl := objstore.ObjectAccessControl{Role: aws.StringValue(grant.Permission)}
		if grant.Grantee != nil {
			switch {
			case grant.Grantee.DisplayName != nil:
				acl.Entity = aws.StringValue(grant.Grantee.DisplayName)
			case grant.Grantee.URI != nil:
				acl.Entity = aws.StringValue(grant.Grantee.URI)
			default:
				acl.Entity = aws.StringValue(grant.Grantee.ID)
			}
			acl.Email = aws.StringValue(grant.Grantee.EmailAddress)
		}
		resp.Items = append(resp.Items, acl)
	}
	return objstore.StatusOK(), resp
}
