// Package convert turns a decoded node document into a KDL document.
//
// The input is an array of node objects:
//
//	[
//	  {
//	    "name": "bees",
//	    "type": "hive",
//	    "arguments": [true, 42, {"value": 3.1415, "type": "my-neat-float"}],
//	    "properties": {"state?": "quite upset"},
//	    "children": [{"name": "queen"}]
//	  }
//	]
//
// Only name is required. An argument or property value is either a bare
// scalar or a typed value object carrying "value" and an optional "type".
//
// Shape errors in a node (a missing name, or arguments, properties or type
// of the wrong kind) abort the whole transform and no document is returned.
// Individual argument or property values that are not scalars are dropped
// and the node is still built.
package convert
