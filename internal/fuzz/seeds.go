package fuzztests

import "testing"

// corpusSeeds covers every construct the grammar knows: comments and
// section markers, extern declarations, proto headers with interface
// fields, DEF/USE nodes, property runs, vectors, IS bindings and
// embedded JavaScript.
var corpusSeeds = []string{
	"",
	"# comment\n",
	"## section\n",
	"#VRML_SIM R2023b utf8\n",
	"EXTERNPROTO Robot \"webots://Robot.proto\"\n",
	"EXTERNPROTO Wheel \"../Wheel.proto\" # trailing\n",
	"Solid { appearance NULL }\n",
	"Transform { translation 0 1 2 }\n",
	"DEF BODY Solid { name \"body\" }\n",
	"USE BODY\n",
	"PROTO Box [\n  field SFVec3f size 1 1 1\n]\n{\n  Shape { }\n}\n",
	"PROTO P [ field SFFloat a 0.5 ]\n{\n  Transform { translation IS a }\n}\n",
	"children [ Shape { }, Shape { } ]\n",
	"size [ 1, 2, 3 ]\n",
	"%< let x = fields.size.value.x; >%\n",
	"%<\n  let y = 1;\n>%\n",
	"Transform { translation -0x1f 1e-3 .5 }\n",
	"Solid { name \"a \\\"b\\\" c\" }\n",
	"PROTO Broken [\n",
	"} ] ] {\n",
}

func addCorpusSeeds(f *testing.F) {
	f.Helper()
	for _, seed := range corpusSeeds {
		f.Add([]byte(seed))
	}
}
