package setarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransform(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{
			"TwoMembers",
			"'G','Trailers,Deleted Scenes','2006-02-15 05:03:42')",
			"'G',['Trailers','Deleted Scenes'],'2006-02-15 05:03:42')",
		},
		{
			"NullFeatures",
			",NULL,'2006-02-15 05:03:42",
			",[],'2006-02-15 05:03:42",
		},
		{
			"EmptyFeatures",
			"'R','','2006-02-15 05:03:42')",
			"'R',[],'2006-02-15 05:03:42')",
		},
		{
			"HyphenatedRating",
			"'PG-13','Commentaries','2006-02-15 05:03:42')",
			"'PG-13',['Commentaries'],'2006-02-15 05:03:42')",
		},
		{
			"KeepsOrderAndTrims",
			"'NC-17','Trailers, Commentaries ,Behind the Scenes','2006-02-15 05:03:42')",
			"'NC-17',['Trailers','Commentaries','Behind the Scenes'],'2006-02-15 05:03:42')",
		},
		{
			"UnknownRatingUntouched",
			"'X','Trailers','2006-02-15 05:03:42')",
			"'X','Trailers','2006-02-15 05:03:42')",
		},
		{
			"FullContinuationRow",
			"(1,'ACADEMY DINOSAUR','A Epic Drama',2006,1,NULL,6,0.99,86,20.99,'PG','Deleted Scenes,Behind the Scenes','2006-02-15 05:03:42'),\n",
			"(1,'ACADEMY DINOSAUR','A Epic Drama',2006,1,NULL,6,0.99,86,20.99,'PG',['Deleted Scenes','Behind the Scenes'],'2006-02-15 05:03:42'),\n",
		},
		{
			"SeveralRowsOnOneLine",
			"INSERT INTO sakila.film VALUES (1,'A','d',2006,1,NULL,6,0.99,86,20.99,'PG','Trailers','2006-02-15 05:03:42'),(2,'B','d',2006,1,NULL,3,4.99,48,12.99,'G',NULL,'2006-02-15 05:03:42');\n",
			"INSERT INTO sakila.film VALUES (1,'A','d',2006,1,NULL,6,0.99,86,20.99,'PG',['Trailers'],'2006-02-15 05:03:42'),(2,'B','d',2006,1,NULL,3,4.99,48,12.99,'G',[],'2006-02-15 05:03:42');\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform(tt.line)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, Transform(got), "Transform must be idempotent")
		})
	}
}

func TestSpecialFeatures(t *testing.T) {
	assert.Equal(t, "[]", SpecialFeatures(""))
	assert.Equal(t, "[]", SpecialFeatures("NULL"))
	assert.Equal(t, "['Trailers']", SpecialFeatures("Trailers"))
	assert.Equal(t, "['Behind the Scenes','Trailers']", SpecialFeatures("Behind the Scenes,Trailers"))
}
