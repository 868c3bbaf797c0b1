package qmd

// Block tags an entry of the open-block stack. The serialized state blob
// stores one byte per open block using these ordinals, so the order is
// part of the wire format.
//
// BlockListItem is a list item whose content begins at indent level 2;
// the following tags encode one extra column of indentation each, up to
// BlockListItemMaxIndentation. Continuation matching recovers the
// required indent from the tag by arithmetic.
//
// BlockAnonymous is any block whose close is not handled by the external
// scanner.
type Block uint8

const (
	BlockQuote Block = iota
	BlockListItem
	BlockListItem1Indentation
	BlockListItem2Indentation
	BlockListItem3Indentation
	BlockListItem4Indentation
	BlockListItem5Indentation
	BlockListItem6Indentation
	BlockListItem7Indentation
	BlockListItem8Indentation
	BlockListItem9Indentation
	BlockListItem10Indentation
	BlockListItem11Indentation
	BlockListItem12Indentation
	BlockListItem13Indentation
	BlockListItem14Indentation
	BlockListItemMaxIndentation
	BlockFencedCodeBlock
	BlockAnonymous
	BlockFencedDiv
	BlockIndentedCodeBlock
)

// listItemBlock returns the list-item tag for the given extra content
// indentation, clamped to the maximal representable indent.
func listItemBlock(extraIndentation uint8) Block {
	b := BlockListItem + Block(extraIndentation)
	if b > BlockListItemMaxIndentation {
		b = BlockListItemMaxIndentation
	}

	return b
}

// isListItem reports whether the block is a list item of any indent.
func (b Block) isListItem() bool {
	return b >= BlockListItem && b <= BlockListItemMaxIndentation
}

// listItemIndentation returns the indentation level which lines of a list
// item must have at minimum. Only meaningful when isListItem is true.
func (b Block) listItemIndentation() uint8 {
	return uint8(b-BlockListItem) + 2
}

var blockNames = [...]string{
	BlockQuote:                  "BlockQuote",
	BlockListItem:               "ListItem",
	BlockListItem1Indentation:   "ListItem+1",
	BlockListItem2Indentation:   "ListItem+2",
	BlockListItem3Indentation:   "ListItem+3",
	BlockListItem4Indentation:   "ListItem+4",
	BlockListItem5Indentation:   "ListItem+5",
	BlockListItem6Indentation:   "ListItem+6",
	BlockListItem7Indentation:   "ListItem+7",
	BlockListItem8Indentation:   "ListItem+8",
	BlockListItem9Indentation:   "ListItem+9",
	BlockListItem10Indentation:  "ListItem+10",
	BlockListItem11Indentation:  "ListItem+11",
	BlockListItem12Indentation:  "ListItem+12",
	BlockListItem13Indentation:  "ListItem+13",
	BlockListItem14Indentation:  "ListItem+14",
	BlockListItemMaxIndentation: "ListItem+15",
	BlockFencedCodeBlock:        "FencedCodeBlock",
	BlockAnonymous:              "Anonymous",
	BlockFencedDiv:              "FencedDiv",
	BlockIndentedCodeBlock:      "IndentedCodeBlock",
}

// String returns a readable name for the block tag.
func (b Block) String() string {
	if int(b) < len(blockNames) && blockNames[b] != "" {
		return blockNames[b]
	}

	return "Unknown"
}
