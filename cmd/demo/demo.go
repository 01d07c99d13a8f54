package main

import (
	"context"
	"fmt"

	"tableflip.dev/restyle/pkg/page"
	"tableflip.dev/restyle/pkg/store"
)

const demo = `<page title="Demo">
  <p><t><![CDATA[Release notes]]></t></p>
  <p><t><![CDATA[The splicer ]]></t><t selected="all"><![CDATA[restyles]]></t><t><![CDATA[ selected runs.]]></t></p>
  <p><t><![CDATA[A cursor in the mid]]></t><t selected="all"><![CDATA[]]></t><t><![CDATA[dle of a word styles the whole word.]]></t></p>
</page>
`

func main() {
	pg, err := page.DecodeString(demo)
	if err != nil {
		panic(err)
	}

	p, err := store.Load(nil)
	if err != nil {
		panic(err)
	}

	if err := p.StorePage("demo", pg); err != nil {
		panic(err)
	}

	for _, name := range p.Pages(context.Background(), "") {
		fmt.Println(name)
	}
}
