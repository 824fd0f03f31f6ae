package mergeop

import "testing"

func TestPush(t *testing.T) {
	runOpTests(t, []opTest{
		{
			name: "append",
			op:   Push(),
			doc:  `{"a":"234","d":{"e":[1,2,3]}}`,
			spec: `{"d.e":4}`,
			want: `{"a":"234","d":{"e":[1,2,3,4]}}`,
		},
		{
			name: "create",
			op:   Push(),
			doc:  `{"a":"234"}`,
			spec: `{"d.e":4}`,
			want: `{"a":"234","d":{"e":[4]}}`,
		},
		{
			name: "create object element",
			op:   Push(),
			doc:  `{"a":"234"}`,
			spec: `{"d.e":{"a":1,"b":2,"c":3}}`,
			want: `{"a":"234","d":{"e":[{"a":1,"b":2,"c":3}]}}`,
		},
		{
			name: "array element",
			op:   Push(),
			doc:  `{"t":[]}`,
			spec: `{"t":[1,2]}`,
			want: `{"t":[[1,2]]}`,
		},
		{
			name: "null",
			op:   Push(),
			doc:  `{"t":null}`,
			spec: `{"t":1}`,
			want: `{"t":[1]}`,
		},
		{
			name: "scalar",
			op:   Push(),
			doc:  `{"t":"x"}`,
			spec: `{"t":"y"}`,
			want: `{"t":["x","y"]}`,
		},
		{
			name: "each",
			op:   Push(),
			doc:  `{"a":"234","d":{"e":[1,2,3]},"f":[4,5,6]}`,
			spec: `{"d.e":4,"f":{"$each":[7,8,9]}}`,
			want: `{"a":"234","d":{"e":[1,2,3,4]},"f":[4,5,6,7,8,9]}`,
		},
		{
			name: "each scalar",
			op:   Push(),
			doc:  `{"t":[1]}`,
			spec: `{"t":{"$each":5}}`,
			want: `{"t":[1,5]}`,
		},
		{
			name: "sort by field",
			op:   Push(),
			doc:  `{"a":"234","f":[{"name":"ben","score":2},{"name":"bill","score":4}]}`,
			spec: `{"f":{
				"$each":[
					{"name":"jack","score":6},
					{"name":"jill","score":3},
					{"name":"jon","score":9},
					{"name":"jackie","score":1}],
				"$sort":{"score":1}}}`,
			want: `{"a":"234","f":[` +
				`{"name":"jackie","score":1},` +
				`{"name":"ben","score":2},` +
				`{"name":"jill","score":3},` +
				`{"name":"bill","score":4},` +
				`{"name":"jack","score":6},` +
				`{"name":"jon","score":9}]}`,
		},
		{
			name: "sort by two fields",
			op:   Push(),
			doc: `{"a":"234","f":[` +
				`{"name":"jackie","score":1},` +
				`{"name":"ben","score":2},` +
				`{"name":"jill","score":3},` +
				`{"name":"bill","score":4},` +
				`{"name":"jack","score":6},` +
				`{"name":"jon","score":9}]}`,
			spec: `{"f":{
				"$each":[
					{"name":"alex","score":1},
					{"name":"micheal","score":1},
					{"name":"xavier","score":5}],
				"$sort":{"score":-1,"name":1}}}`,
			want: `{"a":"234","f":[` +
				`{"name":"jon","score":9},` +
				`{"name":"jack","score":6},` +
				`{"name":"xavier","score":5},` +
				`{"name":"bill","score":4},` +
				`{"name":"jill","score":3},` +
				`{"name":"ben","score":2},` +
				`{"name":"alex","score":1},` +
				`{"name":"jackie","score":1},` +
				`{"name":"micheal","score":1}]}`,
		},
		{
			name: "natural sort",
			op:   Push(),
			doc:  `{"a":"234","f":["bill","ben"]}`,
			spec: `{"f":{"$each":["jack","jill","jon","jackie"],"$sort":"."}}`,
			want: `{"a":"234","f":["ben","bill","jack","jackie","jill","jon"]}`,
		},
		{
			name: "numeric sort",
			op:   Push(),
			doc:  `{"t":[10,9]}`,
			spec: `{"t":{"$each":[100],"$sort":"."}}`,
			want: `{"t":[9,10,100]}`,
		},
		{
			name: "descending sort",
			op:   Push(),
			doc:  `{"t":[1,3]}`,
			spec: `{"t":{"$each":[2],"$sort":-1}}`,
			want: `{"t":[3,2,1]}`,
		},
		{
			name: "sort missing field first",
			op:   Push(),
			doc:  `{"t":[{"a":2},{"b":1}]}`,
			spec: `{"t":{"$each":[{"a":1}],"$sort":{"a":1}}}`,
			want: `{"t":[{"b":1},{"a":1},{"a":2}]}`,
		},
		{
			name: "sort missing field last descending",
			op:   Push(),
			doc:  `{"t":[{"b":1},{"a":1}]}`,
			spec: `{"t":{"$each":[{"a":2}],"$sort":{"a":-1}}}`,
			want: `{"t":[{"a":2},{"a":1},{"b":1}]}`,
		},
		{
			name: "sort nested field",
			op:   Push(),
			doc:  `{"t":[{"p":{"q":2}}]}`,
			spec: `{"t":{"$each":[{"p":{"q":1}}],"$sort":{"p.q":1}}}`,
			want: `{"t":[{"p":{"q":1}},{"p":{"q":2}}]}`,
		},
		{
			name: "unknown sort",
			op:   Push(),
			doc:  `{"t":[2]}`,
			spec: `{"t":{"$each":[1],"$sort":"name"}}`,
			want: `{"t":[2,1]}`,
		},
		{
			name: "sort and slice",
			op:   Push(),
			doc:  `{"a":"234","f":[{"name":"ben","score":2},{"name":"bill","score":4}]}`,
			spec: `{"f":{
				"$each":[
					{"name":"jack","score":6},
					{"name":"jill","score":3},
					{"name":"jon","score":9},
					{"name":"jackie","score":1}],
				"$sort":{"score":1},
				"$slice":-3}}`,
			want: `{"a":"234","f":[` +
				`{"name":"bill","score":4},` +
				`{"name":"jack","score":6},` +
				`{"name":"jon","score":9}]}`,
		},
		{
			name: "slice head",
			op:   Push(),
			doc:  `{"t":[]}`,
			spec: `{"t":{"$each":[1,2,3],"$slice":2}}`,
			want: `{"t":[1,2]}`,
		},
		{
			name: "slice zero",
			op:   Push(),
			doc:  `{"t":[1]}`,
			spec: `{"t":{"$each":[2],"$slice":0}}`,
			want: `{"t":[]}`,
		},
		{
			name: "slice longer than array",
			op:   Push(),
			doc:  `{"t":[1]}`,
			spec: `{"t":{"$each":[2],"$slice":-5}}`,
			want: `{"t":[1,2]}`,
		},
		{
			name: "slice huge float",
			op:   Push(),
			doc:  `{"t":[1,2]}`,
			spec: `{"t":{"$each":[3],"$slice":1e20}}`,
			want: `{"t":[1,2,3]}`,
		},
		{
			name: "slice huge negative float",
			op:   Push(),
			doc:  `{"t":[1,2]}`,
			spec: `{"t":{"$each":[3],"$slice":-1e20}}`,
			want: `{"t":[1,2,3]}`,
		},
		{
			name: "slice min int",
			op:   Push(),
			doc:  `{"t":[1,2]}`,
			spec: `{"t":{"$each":[3],"$slice":-9223372036854775808}}`,
			want: `{"t":[1,2,3]}`,
		},
		{
			name: "slice max int",
			op:   Push(),
			doc:  `{"t":[1,2]}`,
			spec: `{"t":{"$each":[3],"$slice":9223372036854775807}}`,
			want: `{"t":[1,2,3]}`,
		},
		{
			name: "slice fraction",
			op:   Push(),
			doc:  `{"t":[1,2]}`,
			spec: `{"t":{"$each":[3],"$slice":-1.5}}`,
			want: `{"t":[3]}`,
		},
		{
			name: "slice non number",
			op:   Push(),
			doc:  `{"t":[1]}`,
			spec: `{"t":{"$each":[2],"$slice":"x"}}`,
			want: `{"t":[1,2]}`,
		},
		{
			name: "stages in written order",
			op:   Push(),
			doc:  `{"t":[3,1]}`,
			spec: `{"t":{"$slice":1,"$each":[2]}}`,
			want: `{"t":[3,2]}`,
		},
		{
			name: "leftover keys",
			op:   Push(),
			doc:  `{"t":[]}`,
			spec: `{"t":{"$each":[1],"k":"v","j":[2]}}`,
			want: `{"t":[1,{"k":"v","j":[2]}]}`,
		},
	})
}
