package objstore

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// Metadata value objects. These carry only the fields the access layer
// itself needs; transports are free to leave fields they cannot supply at
// their zero value.

// BucketMetadata describes one bucket.
type BucketMetadata struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ProjectNumber  string `json:"projectNumber"`
	Location       string `json:"location"`
	StorageClass   string `json:"storageClass"`
	Metageneration int64  `json:"metageneration,string"`
	TimeCreated    string `json:"timeCreated"`
	Updated        string `json:"updated"`
	Etag           string `json:"etag"`
	SelfLink       string `json:"selfLink"`
}

func (m BucketMetadata) String() string {
	return fmt.Sprintf("BucketMetadata={name=%s, location=%s, storage_class=%s, metageneration=%d}",
		m.Name, m.Location, m.StorageClass, m.Metageneration)
}

// ParseBucketMetadata decodes the JSON representation of a bucket.
func ParseBucketMetadata(data []byte) (*BucketMetadata, error) {
	var m BucketMetadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "malformed bucket metadata")
	}
	return &m, nil
}

// ObjectMetadata describes one object.
type ObjectMetadata struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Bucket         string `json:"bucket"`
	Generation     int64  `json:"generation,string"`
	Metageneration int64  `json:"metageneration,string"`
	Size           int64  `json:"size,string"`
	ContentType    string `json:"contentType"`
	StorageClass   string `json:"storageClass"`
	MD5Hash        string `json:"md5Hash"`
	TimeCreated    string `json:"timeCreated"`
	Updated        string `json:"updated"`
	Etag           string `json:"etag"`
}

func (m ObjectMetadata) String() string {
	return fmt.Sprintf("ObjectMetadata={bucket=%s, name=%s, generation=%d, size=%d}",
		m.Bucket, m.Name, m.Generation, m.Size)
}

// ParseObjectMetadata decodes the JSON representation of an object.
func ParseObjectMetadata(data []byte) (*ObjectMetadata, error) {
	var m ObjectMetadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "malformed object metadata")
	}
	return &m, nil
}

// ObjectAccessControl is one entry in an object's access control list.
type ObjectAccessControl struct {
	Entity string `json:"entity"`
	Role   string `json:"role"`
	Email  string `json:"email,omitempty"`
	Domain string `json:"domain,omitempty"`
}

func (a ObjectAccessControl) String() string {
	return fmt.Sprintf("ObjectAccessControl={entity=%s, role=%s}", a.Entity, a.Role)
}
