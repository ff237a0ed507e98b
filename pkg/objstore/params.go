package objstore

import (
	"strconv"
	"strings"
)

// Param is an optional request parameter. Each concrete kind also
// implements the marker interface of every operation that accepts it
// (ListBucketsParam, GetObjectMetadataParam, ...), so attaching a
// parameter to an operation that does not support it is rejected at
// compile time.
type Param interface {
	// ParameterKind is the wire name of the parameter, e.g. "userProject".
	ParameterKind() string
	// ParameterValue is the serialized value.
	ParameterValue() string
}

// Per-operation parameter contracts. A parameter kind opts into an
// operation by implementing its marker method.
type (
	ListBucketsParam interface {
		Param
		listBucketsParam()
	}
	GetBucketMetadataParam interface {
		Param
		getBucketMetadataParam()
	}
	InsertObjectMediaParam interface {
		Param
		insertObjectMediaParam()
	}
	GetObjectMetadataParam interface {
		Param
		getObjectMetadataParam()
	}
	ListObjectsParam interface {
		Param
		listObjectsParam()
	}
	ReadObjectRangeParam interface {
		Param
		readObjectRangeParam()
	}
	DeleteObjectParam interface {
		Param
		deleteObjectParam()
	}
	ListObjectAclParam interface {
		Param
		listObjectAclParam()
	}
)

// Wire names for every parameter kind. Transports read typed values back
// out of an envelope with Parameter(Kind...).
const (
	KindMaxResults               = "maxResults"
	KindPrefix                   = "prefix"
	KindDelimiter                = "delimiter"
	KindProjection               = "projection"
	KindUserProject              = "userProject"
	KindGeneration               = "generation"
	KindIfGenerationMatch        = "ifGenerationMatch"
	KindIfGenerationNotMatch     = "ifGenerationNotMatch"
	KindIfMetagenerationMatch    = "ifMetagenerationMatch"
	KindIfMetagenerationNotMatch = "ifMetagenerationNotMatch"
)

// MaxResults caps the number of items returned by a list operation.
type MaxResults int64

func (MaxResults) ParameterKind() string    { return KindMaxResults }
func (p MaxResults) ParameterValue() string { return strconv.FormatInt(int64(p), 10) }
func (MaxResults) listBucketsParam()        {}
func (MaxResults) listObjectsParam()        {}

// Prefix restricts a list operation to names beginning with it.
type Prefix string

func (Prefix) ParameterKind() string    { return KindPrefix }
func (p Prefix) ParameterValue() string { return string(p) }
func (Prefix) listBucketsParam()        {}
func (Prefix) listObjectsParam()        {}

// Delimiter groups object list results sharing a common prefix up to the
// delimiter, in the manner of directories.
type Delimiter string

func (Delimiter) ParameterKind() string    { return KindDelimiter }
func (p Delimiter) ParameterValue() string { return string(p) }
func (Delimiter) listObjectsParam()        {}

// Projection selects which subset of metadata fields the service returns,
// typically "full" or "noAcl".
type Projection string

func (Projection) ParameterKind() string    { return KindProjection }
func (p Projection) ParameterValue() string { return string(p) }
func (Projection) listBucketsParam()        {}
func (Projection) getBucketMetadataParam()  {}
func (Projection) insertObjectMediaParam()  {}
func (Projection) getObjectMetadataParam()  {}
func (Projection) listObjectsParam()        {}

// UserProject names the project billed for the request, required for
// requester-pays buckets. Accepted by every operation.
type UserProject string

func (UserProject) ParameterKind() string    { return KindUserProject }
func (p UserProject) ParameterValue() string { return string(p) }
func (UserProject) listBucketsParam()        {}
func (UserProject) getBucketMetadataParam()  {}
func (UserProject) insertObjectMediaParam()  {}
func (UserProject) getObjectMetadataParam()  {}
func (UserProject) listObjectsParam()        {}
func (UserProject) readObjectRangeParam()    {}
func (UserProject) deleteObjectParam()       {}
func (UserProject) listObjectAclParam()      {}

// Generation selects a specific version of an object.
type Generation int64

func (Generation) ParameterKind() string    { return KindGeneration }
func (p Generation) ParameterValue() string { return strconv.FormatInt(int64(p), 10) }
func (Generation) getObjectMetadataParam()  {}
func (Generation) readObjectRangeParam()    {}
func (Generation) deleteObjectParam()       {}
func (Generation) listObjectAclParam()      {}

// IfGenerationMatch makes the operation conditional on the object's
// current generation matching.
type IfGenerationMatch int64

func (IfGenerationMatch) ParameterKind() string    { return KindIfGenerationMatch }
func (p IfGenerationMatch) ParameterValue() string { return strconv.FormatInt(int64(p), 10) }
func (IfGenerationMatch) insertObjectMediaParam()  {}
func (IfGenerationMatch) getObjectMetadataParam()  {}
func (IfGenerationMatch) readObjectRangeParam()    {}
func (IfGenerationMatch) deleteObjectParam()       {}

// IfGenerationNotMatch is the negated form of IfGenerationMatch.
type IfGenerationNotMatch int64

func (IfGenerationNotMatch) ParameterKind() string    { return KindIfGenerationNotMatch }
func (p IfGenerationNotMatch) ParameterValue() string { return strconv.FormatInt(int64(p), 10) }
func (IfGenerationNotMatch) insertObjectMediaParam()  {}
func (IfGenerationNotMatch) getObjectMetadataParam()  {}
func (IfGenerationNotMatch) readObjectRangeParam()    {}
func (IfGenerationNotMatch) deleteObjectParam()       {}

// IfMetagenerationMatch makes the operation conditional on the current
// metageneration matching.
type IfMetagenerationMatch int64

func (IfMetagenerationMatch) ParameterKind() string    { return KindIfMetagenerationMatch }
func (p IfMetagenerationMatch) ParameterValue() string { return strconv.FormatInt(int64(p), 10) }
func (IfMetagenerationMatch) getBucketMetadataParam()  {}
func (IfMetagenerationMatch) insertObjectMediaParam()  {}
func (IfMetagenerationMatch) getObjectMetadataParam()  {}
func (IfMetagenerationMatch) readObjectRangeParam()    {}
func (IfMetagenerationMatch) deleteObjectParam()       {}

// IfMetagenerationNotMatch is the negated form of IfMetagenerationMatch.
type IfMetagenerationNotMatch int64

func (IfMetagenerationNotMatch) ParameterKind() string    { return KindIfMetagenerationNotMatch }
func (p IfMetagenerationNotMatch) ParameterValue() string { return strconv.FormatInt(int64(p), 10) }
func (IfMetagenerationNotMatch) getBucketMetadataParam()  {}
func (IfMetagenerationNotMatch) insertObjectMediaParam()  {}
func (IfMetagenerationNotMatch) getObjectMetadataParam()  {}
func (IfMetagenerationNotMatch) readObjectRangeParam()    {}
func (IfMetagenerationNotMatch) deleteObjectParam()       {}

// parameterSet holds the optional parameters attached to one request
// envelope. Each envelope creates it with the operation's declared kind
// order; serialization always follows that order, never setter-call
// order. Setting a kind twice keeps the last value.
type parameterSet struct {
	kinds  []string
	values map[string]string
}

func newParameterSet(kinds ...string) parameterSet {
	return parameterSet{kinds: kinds, values: make(map[string]string)}
}

func (s *parameterSet) set(p Param) {
	s.values[p.ParameterKind()] = p.ParameterValue()
}

// Parameter returns the serialized value for a kind and whether it was
// set. Transports use this to copy parameters into wire requests.
func (s *parameterSet) Parameter(kind string) (string, bool) {
	v, ok := s.values[kind]
	return v, ok
}

// EncodeParameters renders every present parameter as "name=value" in
// declared kind order, joined with sep. Absent kinds contribute nothing,
// including separators; a fully unset envelope encodes to "".
func (s *parameterSet) EncodeParameters(sep string) string {
	var b strings.Builder
	for _, kind := range s.kinds {
		v, ok := s.values[kind]
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(kind)
		b.WriteString("=")
		b.WriteString(v)
	}
	return b.String()
}

// String renders the set for log lines, same presence and ordering rules
// as EncodeParameters.
func (s *parameterSet) String() string {
	return s.EncodeParameters(", ")
}
