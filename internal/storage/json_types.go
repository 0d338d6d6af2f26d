package storage

// tableDocument is the on-file shape of one dataset table: a schema header
// followed by raw rows. This is seed data for in-memory tables, not a
// durability layer.
type tableDocument struct {
	Schema schemaDoc                `json:"schema"`
	Rows   []map[string]interface{} `json:"rows"`
}

type schemaDoc struct {
	TableName  string    `json:"table_name"`
	Attributes []attrDoc `json:"attributes"`
}

type attrDoc struct {
	Name string `json:"name"`
	Type string `json:"type"`
}
