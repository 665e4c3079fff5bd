package domain

import "strings"

type PublishReceipt struct {
	SubPageID       string
	DatabaseEntryID string
	// Location is a URL or file path a human can open.
	Location string
}

type ObjectKind string

const (
	ObjectKindPage     ObjectKind = "page"
	ObjectKindDatabase ObjectKind = "database"
)

// RemoteObject is a search hit in the remote document store.
type RemoteObject struct {
	ID       string
	Kind     ObjectKind
	Title    string
	ParentID string
}

type ColumnType string

const (
	ColumnTypeTitle       ColumnType = "title"
	ColumnTypeURL         ColumnType = "url"
	ColumnTypeRichText    ColumnType = "rich_text"
	ColumnTypeMultiSelect ColumnType = "multi_select"
)

type Column struct {
	Name string
	Type ColumnType
}

const (
	ColumnName                 = "Name"
	ColumnURL                  = "URL"
	ColumnTopic                = "Topic"
	ColumnTags                 = "Tags"
	ColumnSummary              = "Summary"
	ColumnPracticalApplication = "PracticalApplication"
	ColumnDetailedPage         = "DetailedPage"
)

// IndexColumns is the fixed schema of the tabular index.
func IndexColumns() []Column {
	return []Column{
		{Name: ColumnName, Type: ColumnTypeTitle},
		{Name: ColumnURL, Type: ColumnTypeURL},
		{Name: ColumnTopic, Type: ColumnTypeRichText},
		{Name: ColumnTags, Type: ColumnTypeMultiSelect},
		{Name: ColumnSummary, Type: ColumnTypeRichText},
		{Name: ColumnPracticalApplication, Type: ColumnTypeRichText},
		{Name: ColumnDetailedPage, Type: ColumnTypeURL},
	}
}

// PropertyValue is one cell of an index row. Exactly one of the typed fields is
// meaningful, selected by Type.
type PropertyValue struct {
	Column string
	Type   ColumnType
	Text   string
	URL    string
	Values []string
}

func TitleValue(column, text string) PropertyValue {
	return PropertyValue{Column: column, Type: ColumnTypeTitle, Text: text}
}

func RichTextValue(column, text string) PropertyValue {
	return PropertyValue{Column: column, Type: ColumnTypeRichText, Text: text}
}

func URLValue(column, url string) PropertyValue {
	return PropertyValue{Column: column, Type: ColumnTypeURL, URL: url}
}

func MultiSelectValue(column string, values []string) PropertyValue {
	if values == nil {
		values = []string{}
	}
	return PropertyValue{Column: column, Type: ColumnTypeMultiSelect, Values: values}
}

// CanonicalPageURL formats a page identifier as the store's canonical page URL.
func CanonicalPageURL(pageID string) string {
	return "https://www.notion.so/" + strings.ReplaceAll(pageID, "-", "")
}
