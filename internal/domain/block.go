package domain

type BlockKind string

const (
	BlockKindHeading       BlockKind = "heading"
	BlockKindParagraph     BlockKind = "paragraph"
	BlockKindBulletedItem  BlockKind = "bulleted_item"
	BlockKindChecklistItem BlockKind = "checklist_item"
	BlockKindCode          BlockKind = "code"
	BlockKindCallout       BlockKind = "callout"
	BlockKindDivider       BlockKind = "divider"
	BlockKindEmbed         BlockKind = "embed"
)

// Block is closed: only the types in this file implement it.
type Block interface {
	Kind() BlockKind
	isBlock()
}

type Heading struct {
	Level    int
	Text     string
	Children []Block
}

type Paragraph struct {
	Text string
}

type BulletedItem struct {
	Text string
}

type ChecklistItem struct {
	Text    string
	Checked bool
}

type Code struct {
	Text     string
	Language string
}

type Callout struct {
	Icon     string
	Text     string
	Children []Block
}

type Divider struct{}

type Embed struct {
	URL string
}

func (Heading) Kind() BlockKind       { return BlockKindHeading }
func (Paragraph) Kind() BlockKind     { return BlockKindParagraph }
func (BulletedItem) Kind() BlockKind  { return BlockKindBulletedItem }
func (ChecklistItem) Kind() BlockKind { return BlockKindChecklistItem }
func (Code) Kind() BlockKind          { return BlockKindCode }
func (Callout) Kind() BlockKind       { return BlockKindCallout }
func (Divider) Kind() BlockKind       { return BlockKindDivider }
func (Embed) Kind() BlockKind         { return BlockKindEmbed }

func (Heading) isBlock()       {}
func (Paragraph) isBlock()     {}
func (BulletedItem) isBlock()  {}
func (ChecklistItem) isBlock() {}
func (Code) isBlock()          {}
func (Callout) isBlock()       {}
func (Divider) isBlock()       {}
func (Embed) isBlock()         {}

// CountBlocks returns the number of blocks in the forest, children included.
func CountBlocks(blocks []Block) int {
	total := 0
	for _, block := range blocks {
		total++
		switch b := block.(type) {
		case Heading:
			total += CountBlocks(b.Children)
		case Callout:
			total += CountBlocks(b.Children)
		}
	}

	return total
}
