package kdl_test

import (
	"os"

	"github.com/ardnew/json2kdl/kdl"
)

func ExampleDocument_Format() {
	bees := kdl.NewNode("bees")
	bees.Push(kdl.NewEntry(kdl.Bool(true)))
	bees.Push(kdl.NewEntry(kdl.Float(3.1415)).SetType("my-neat-float"))
	bees.Insert("state?", kdl.NewEntry(kdl.String("quite upset")))

	doc := kdl.NewDocument(
		bees,
		kdl.NewNode("lemon").SetChildren(kdl.NewDocument(kdl.NewNode("child"))),
	)

	_ = doc.Format(os.Stdout)
	// Output:
	// bees true (my-neat-float)3.1415 state?="quite upset"
	// lemon {
	//     child
	// }
}
