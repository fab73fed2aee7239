// Package handle models references to objects that live in a foreign
// runtime (for example a .NET engine reached through an interop bridge).
//
// A Handle is opaque and non-owning: the foreign runtime controls the
// lifetime of the object behind it, and nothing in this module mutates it.
// Proxies read fields through Handle.Field and learn the runtime type of an
// object through Handle.Type.
//
// Object, Slice and MemoryBridge are in-process implementations used by the
// built-in host and by tests.
package handle
