package tabsql

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/nao1215/tabsql/domain/model"
)

// Character validation constants
const (
	// firstDigitChar represents the first numeric character
	firstDigitChar = '0'
	// lastDigitChar represents the last numeric character
	lastDigitChar = '9'
	// firstLowerChar represents the first lowercase letter
	firstLowerChar = 'a'
	// lastLowerChar represents the last lowercase letter
	lastLowerChar = 'z'
	// firstUpperChar represents the first uppercase letter
	firstUpperChar = 'A'
	// lastUpperChar represents the last uppercase letter
	lastUpperChar = 'Z'
	// underscoreChar represents the underscore character
	underscoreChar = '_'
)

const (
	// defaultTableName is used when nothing usable is left after sanitizing
	defaultTableName = "data"
	// digitPrefix is prepended to names starting with a digit
	digitPrefix = "table_"
	// reservedSuffix is appended to derived names that are reserved words
	reservedSuffix = "_data"
)

// reservedWords holds the MySQL reserved words that cannot be used as an
// unquoted table name.
var reservedWords = map[string]struct{}{
	"accessible": {}, "add": {}, "all": {}, "alter": {}, "analyze": {}, "and": {},
	"as": {}, "asc": {}, "asensitive": {}, "before": {}, "between": {}, "bigint": {},
	"binary": {}, "blob": {}, "both": {}, "by": {}, "call": {}, "cascade": {},
	"case": {}, "change": {}, "char": {}, "character": {}, "check": {}, "collate": {},
	"column": {}, "condition": {}, "constraint": {}, "continue": {}, "convert": {},
	"create": {}, "cross": {}, "cube": {}, "cume_dist": {}, "current_date": {},
	"current_time": {}, "current_timestamp": {}, "current_user": {}, "cursor": {},
	"database": {}, "databases": {}, "day_hour": {}, "day_microsecond": {},
	"day_minute": {}, "day_second": {}, "dec": {}, "decimal": {}, "declare": {},
	"default": {}, "delayed": {}, "delete": {}, "dense_rank": {}, "desc": {},
	"describe": {}, "deterministic": {}, "distinct": {}, "distinctrow": {}, "div": {},
	"double": {}, "drop": {}, "dual": {}, "each": {}, "else": {}, "elseif": {},
	"empty": {}, "enclosed": {}, "escaped": {}, "except": {}, "exists": {}, "exit": {},
	"explain": {}, "false": {}, "fetch": {}, "first_value": {}, "float": {},
	"float4": {}, "float8": {}, "for": {}, "force": {}, "foreign": {}, "from": {},
	"fulltext": {}, "function": {}, "generated": {}, "get": {}, "grant": {},
	"group": {}, "grouping": {}, "groups": {}, "having": {}, "high_priority": {},
	"hour_microsecond": {}, "hour_minute": {}, "hour_second": {}, "if": {},
	"ignore": {}, "in": {}, "index": {}, "infile": {}, "inner": {}, "inout": {},
	"insensitive": {}, "insert": {}, "int": {}, "int1": {}, "int2": {}, "int3": {},
	"int4": {}, "int8": {}, "integer": {}, "intersect": {}, "interval": {}, "into": {},
	"io_after_gtids": {}, "io_before_gtids": {}, "is": {}, "iterate": {}, "join": {},
	"json_table": {}, "key": {}, "keys": {}, "kill": {}, "lag": {}, "last_value": {},
	"lateral": {}, "lead": {}, "leading": {}, "leave": {}, "left": {}, "like": {},
	"limit": {}, "linear": {}, "lines": {}, "load": {}, "localtime": {},
	"localtimestamp": {}, "lock": {}, "long": {}, "longblob": {}, "longtext": {},
	"loop": {}, "low_priority": {}, "master_bind": {}, "master_ssl_verify_server_cert": {},
	"match": {}, "maxvalue": {}, "mediumblob": {}, "mediumint": {}, "mediumtext": {},
	"middleint": {}, "minute_microsecond": {}, "minute_second": {}, "mod": {},
	"modifies": {}, "natural": {}, "not": {}, "no_write_to_binlog": {}, "nth_value": {},
	"ntile": {}, "null": {}, "numeric": {}, "of": {}, "on": {}, "optimize": {},
	"optimizer_costs": {}, "option": {}, "optionally": {}, "or": {}, "order": {},
	"out": {}, "outer": {}, "outfile": {}, "over": {}, "partition": {},
	"percent_rank": {}, "precision": {}, "primary": {}, "procedure": {}, "purge": {},
	"range": {}, "rank": {}, "read": {}, "reads": {}, "read_write": {}, "real": {},
	"recursive": {}, "references": {}, "regexp": {}, "release": {}, "rename": {},
	"repeat": {}, "replace": {}, "require": {}, "resignal": {}, "restrict": {},
	"return": {}, "revoke": {}, "right": {}, "rlike": {}, "row": {}, "rows": {},
	"row_number": {}, "schema": {}, "schemas": {}, "second_microsecond": {},
	"select": {}, "sensitive": {}, "separator": {}, "set": {}, "show": {},
	"signal": {}, "smallint": {}, "spatial": {}, "specific": {}, "sql": {},
	"sqlexception": {}, "sqlstate": {}, "sqlwarning": {}, "sql_big_result": {},
	"sql_calc_found_rows": {}, "sql_small_result": {}, "ssl": {}, "starting": {},
	"stored": {}, "straight_join": {}, "system": {}, "table": {}, "terminated": {},
	"then": {}, "tinyblob": {}, "tinyint": {}, "tinytext": {}, "to": {},
	"trailing": {}, "trigger": {}, "true": {}, "undo": {}, "union": {}, "unique": {},
	"unlock": {}, "unsigned": {}, "update": {}, "usage": {}, "use": {}, "using": {},
	"utc_date": {}, "utc_time": {}, "utc_timestamp": {}, "values": {},
	"varbinary": {}, "varchar": {}, "varcharacter": {}, "varying": {}, "virtual": {},
	"when": {}, "where": {}, "while": {}, "window": {}, "with": {}, "write": {},
	"xor": {}, "year_month": {}, "zerofill": {},
}

// isReservedWord reports whether name is a MySQL reserved word, ignoring case.
func isReservedWord(name string) bool {
	_, ok := reservedWords[strings.ToLower(name)]
	return ok
}

// tableNamePattern accepts "name" and "schema.name" made of letters, digits, '_' and '$'.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)?$`)

// TableName represents a table name
type TableName struct {
	value string
}

// NewTableName creates a new TableName. Surrounding spaces are removed.
func NewTableName(name string) TableName {
	return TableName{value: strings.TrimSpace(name)}
}

// TableNameFromPath derives a sanitized table name from an input file path:
// "/data/Café Sales.tsv.gz" becomes "Cafe_Sales".
func TableNameFromPath(path string) TableName {
	base := filepath.Base(model.TrimDataExtension(path))
	return NewTableName(base).Sanitize()
}

// String returns the string representation of TableName
func (tn TableName) String() string {
	return tn.value
}

// Equal compares two table names
func (tn TableName) Equal(other TableName) bool {
	return tn.value == other.value
}

// Validate checks that the name can be emitted unquoted in the script.
func (tn TableName) Validate() error {
	if tn.value == "" {
		return fmt.Errorf("%w: table name cannot be empty", ErrInvalidTableName)
	}
	if !tableNamePattern.MatchString(tn.value) {
		return fmt.Errorf("%w: %q", ErrInvalidTableName, tn.value)
	}
	for _, part := range strings.Split(tn.value, ".") {
		if isReservedWord(part) {
			return fmt.Errorf("%w: %q is a reserved word", ErrInvalidTableName, part)
		}
	}
	return nil
}

// Sanitize returns a sanitized version of the table name
func (tn TableName) Sanitize() TableName {
	return TableName{value: tn.sanitizeString()}
}

// sanitizeString folds accents to ASCII and removes invalid characters
func (tn TableName) sanitizeString() string {
	// Decompose, drop nonspacing marks, recompose: "é" becomes "e".
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, tn.value)
	if err != nil {
		folded = tn.value
	}

	// Replace spaces and invalid characters with underscores
	result := strings.ReplaceAll(folded, " ", "_")
	result = strings.ReplaceAll(result, "-", "_")
	result = strings.ReplaceAll(result, ".", "_")

	// Remove any non-alphanumeric characters except underscore
	var sanitized strings.Builder
	for _, r := range result {
		if (r >= firstLowerChar && r <= lastLowerChar) ||
			(r >= firstUpperChar && r <= lastUpperChar) ||
			(r >= firstDigitChar && r <= lastDigitChar) ||
			r == underscoreChar {
			sanitized.WriteRune(r)
		}
	}

	finalResult := sanitized.String()

	// Ensure it doesn't start with a number
	if len(finalResult) > 0 && finalResult[0] >= firstDigitChar && finalResult[0] <= lastDigitChar {
		finalResult = digitPrefix + finalResult
	}

	if finalResult == "" {
		finalResult = defaultTableName
	}

	if isReservedWord(finalResult) {
		finalResult += reservedSuffix
	}

	return finalResult
}

// DefaultOutputPath returns the script path used when none is given:
// the input path with its data and compression extensions replaced by ".sql".
func DefaultOutputPath(inputPath string) string {
	return model.TrimDataExtension(inputPath) + model.ExtSQL
}
