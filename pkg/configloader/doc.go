// Package configloader reads a flat KEY<delimiter>VALUE file and writes the
// coerced values into the identically named fields of a caller-owned target.
//
// Values are coerced in a fixed order: boolean, integer, floating point and
// finally the trimmed string. Fields are resolved through a FieldMap, either
// supplied by the target (see Mapper) or derived once per struct type by
// reflection, where embedded structs act as ancestor levels.
package configloader
