package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsControlLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected bool
	}{
		{"Set", "SET NAMES utf8mb4;\n", true},
		{"Use", "USE sakila;\n", true},
		{"Lock", "LOCK TABLES `actor` WRITE;\n", true},
		{"Unlock", "UNLOCK TABLES;\n", true},
		{"Commit", "COMMIT;\n", true},
		{"Insert", "INSERT INTO `actor` VALUES (1);\n", false},
		{"IndentedSet", "  SET x=1;\n", false}, // prefixes match the raw line
		{"SetNoSpace", "SETTINGS\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsControlLine(tt.line), "IsControlLine(%q)", tt.line)
		})
	}
}

func TestMarkerTable(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		table string
		ok    bool
	}{
		{"Backquoted", "-- Dumping data for table `film`\n", "film", true},
		{"Bare", "-- Dumping data for table film_text\n", "film_text", true},
		{"NoIdentifier", "-- Dumping data for table\n", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, ok := MarkerTable(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.table, table)
		})
	}
}

func TestIsDumpMarker(t *testing.T) {
	assert.True(t, IsDumpMarker("-- Dumping data for table `actor`\n"))
	assert.False(t, IsDumpMarker("-- Table structure for table `actor`\n"))
	assert.False(t, IsDumpMarker("('Dumping data for table x')\n"))
}

func TestQualifyInsert(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{"Backquoted", "INSERT INTO `actor` VALUES (1,'PENELOPE');\n", "INSERT INTO sakila.actor VALUES (1,'PENELOPE');\n"},
		{"Bare", "INSERT INTO actor VALUES (1);\n", "INSERT INTO sakila.actor VALUES (1);\n"},
		{"AlreadyQualified", "INSERT INTO sakila.actor VALUES (1);\n", "INSERT INTO sakila.actor VALUES (1);\n"},
		{"OtherQualifier", "INSERT INTO `old`.`actor` VALUES (1);\n", "INSERT INTO sakila.actor VALUES (1);\n"},
		{"NotInsert", "(2,'NICK');\n", "(2,'NICK');\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, QualifyInsert(tt.line, DefaultNamespace))
		})
	}
}

func TestQualifyInsertIdempotent(t *testing.T) {
	line := "INSERT INTO `payment` VALUES (1,1,1,76,2.99,'2005-05-25 11:30:37','2006-02-15 22:12:30');\n"
	once := QualifyInsert(line, DefaultNamespace)
	assert.Equal(t, once, QualifyInsert(once, DefaultNamespace))
}
