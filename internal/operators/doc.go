// Package operators serves the operator lookup endpoint:
//
//	GET /@operators?group=<name>&b_start=<n>&b_size=<n>
//
// It lists the members of a directory group as {value, label} items sorted
// by value, batched the way plone.restapi batches collections. An unknown
// group is logged and answered with the single "admin" item.
package operators
