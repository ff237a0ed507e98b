/*

Package objstore is a client-side access layer for immutable cloud object
storage such as AWS S3, Google Cloud Storage, and S3-compatible stores.
It gives callers typed requests (list buckets, get/insert objects, read
object ranges, list ACLs) while transparently handling transient failures,
optional request parameter composition, and diagnostic logging, so that
call sites never re-implement retry loops or backoff timing.

The package is organized as a decorator chain over a single capability
interface, RawClient:

	raw (transport) -> LoggingClient -> RetryClient -> Client (facade)

RawClient is implemented by transport packages (see pkg/awss3). It never
retries and never logs; it only classifies each outcome into a Status.
RetryClient consults pluggable RetryPolicy and BackoffPolicy values to
decide whether and how long to wait before reissuing a failed call.
LoggingClient logs the request and the resulting status around every call
it forwards, altering nothing.

Errors - the standard gRPC status codes (https://github.com/grpc/grpc/blob/master/doc/statuscodes.md)
correspond closely to the needs of object storage, so Status carries one
as its classification code. Only transient codes (server overload,
timeouts, rate limiting) are ever retried; permanent codes (not found,
bad request, permission denied) surface immediately.

Idempotency - the same request envelope is reissued unmodified on every
retry attempt. Reads and metadata gets are safe to retry; callers must not
rely on exactly-once execution for writes issued under a retrying client.

Consistency guarantees, object versioning beyond generation numbers, and
multipart uploads are left to the transport implementations.
*/
package objstore
