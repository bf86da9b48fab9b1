// Code generated by ent, DO NOT EDIT.

package generated

// The schema-stitching logic is generated in github.com/khanesh/khanesh/internal/ent/generated/runtime/runtime.go
