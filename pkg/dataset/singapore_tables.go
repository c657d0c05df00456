package dataset

import (
	da "github.com/lintang-b-s/metroplanner/pkg/datastructure"
)

// Singapore MRT stations and line-labeled travel times in minutes. "today" is the current network,
// "future" adds the T5 / TEL / CRL extensions. Coordinates are schematic, not GPS.

type adjacency struct {
	from  string
	conns []da.Connection
}

var coordinateTable = map[string][2]float64{
	"City Hall":          {0, 0},
	"Dhoby Ghaut":        {-1, 1},
	"Orchard":            {-2, 2},
	"Marina Bay":         {1, -1},
	"Promenade":          {2, -1},
	"Gardens by the Bay": {2, -2},
	"Outram Park":        {-2, -2},
	"Harbourfront":       {-3, -2},
	"Bishan":             {0, 4},
	"Caldecott":          {1, 5},
	"Serangoon":          {2, 5},
	"Stevens":            {-2, 3},
	"Paya Lebar":         {4, 1},
	"MacPherson":         {3, 2},
	"Tampines":           {6, 3},
	"Tanah Merah":        {7, 2},
	"Expo":               {8, 1},
	"Changi Airport":     {9, 0},
	"Sungei Bedok":       {7, 3},
	"T5":                 {10, 1},
	"Punggol":            {6, 6},
	"Pasir Ris":          {9, 6},
	"Hougang":            {4, 6},
	"Ang Mo Kio":         {1, 7},
	"Bright Hill":        {1, 6},
}

var todayTable = []adjacency{
	{"Changi Airport", []da.Connection{
		{Destination: "Expo", Minutes: 8, Line: "EWL2"},
	}},
	{"Expo", []da.Connection{
		{Destination: "Changi Airport", Minutes: 8, Line: "EWL2"},
		{Destination: "Tanah Merah", Minutes: 4, Line: "EWL2"},
		{Destination: "Tampines", Minutes: 6, Line: "DTL"},
	}},
	{"Tanah Merah", []da.Connection{
		{Destination: "Expo", Minutes: 4, Line: "EWL2"},
		{Destination: "Paya Lebar", Minutes: 10, Line: "EWL"},
		{Destination: "Tampines", Minutes: 5, Line: "EWL"},
	}},
	{"Paya Lebar", []da.Connection{
		{Destination: "Tanah Merah", Minutes: 10, Line: "EWL"},
		{Destination: "MacPherson", Minutes: 3, Line: "CCL"},
		{Destination: "City Hall", Minutes: 12, Line: "EWL"},
		{Destination: "Promenade", Minutes: 10, Line: "CCL"},
	}},
	{"Outram Park", []da.Connection{
		{Destination: "City Hall", Minutes: 5, Line: "EWL"},
		{Destination: "Orchard", Minutes: 4, Line: "TEL"},
		{Destination: "Dhoby Ghaut", Minutes: 6, Line: "NEL"},
		{Destination: "Marina Bay", Minutes: 2, Line: "TEL"},
	}},
	{"MacPherson", []da.Connection{
		{Destination: "Paya Lebar", Minutes: 3, Line: "CCL"},
		{Destination: "Serangoon", Minutes: 7, Line: "CCL"},
		{Destination: "Tampines", Minutes: 13, Line: "DTL"},
		{Destination: "Promenade", Minutes: 21, Line: "DTL"},
	}},
	{"Promenade", []da.Connection{
		{Destination: "Paya Lebar", Minutes: 10, Line: "CCL"},
		{Destination: "Marina Bay", Minutes: 4, Line: "CCL"},
		{Destination: "MacPherson", Minutes: 21, Line: "DTL"},
		{Destination: "Dhoby Ghaut", Minutes: 6, Line: "CCL2"},
		{Destination: "Stevens", Minutes: 11, Line: "DTL"},
	}},
	{"Serangoon", []da.Connection{
		{Destination: "Dhoby Ghaut", Minutes: 13, Line: "NEL"},
		{Destination: "MacPherson", Minutes: 7, Line: "CCL"},
		{Destination: "Bishan", Minutes: 5, Line: "CCL"},
	}},
	{"Marina Bay", []da.Connection{
		{Destination: "Promenade", Minutes: 4, Line: "CCL"},
		{Destination: "City Hall", Minutes: 3, Line: "NSL"},
		{Destination: "Gardens by the Bay", Minutes: 3, Line: "TEL"},
		{Destination: "Outram Park", Minutes: 2, Line: "TEL"},
	}},
	{"City Hall", []da.Connection{
		{Destination: "Marina Bay", Minutes: 3, Line: "NSL"},
		{Destination: "Dhoby Ghaut", Minutes: 2, Line: "NSL"},
		{Destination: "Outram Park", Minutes: 5, Line: "EWL"},
		{Destination: "Paya Lebar", Minutes: 12, Line: "EWL"},
	}},
	{"Dhoby Ghaut", []da.Connection{
		{Destination: "City Hall", Minutes: 2, Line: "NSL"},
		{Destination: "Orchard", Minutes: 3, Line: "NSL"},
		{Destination: "Outram Park", Minutes: 6, Line: "NEL"},
		{Destination: "Serangoon", Minutes: 13, Line: "NEL"},
		{Destination: "Promenade", Minutes: 6, Line: "CCL2"},
	}},
	{"Orchard", []da.Connection{
		{Destination: "Dhoby Ghaut", Minutes: 3, Line: "NSL"},
		{Destination: "Bishan", Minutes: 5, Line: "NSL"},
		{Destination: "Outram Park", Minutes: 4, Line: "TEL"},
		{Destination: "Stevens", Minutes: 5, Line: "TEL"},
	}},
	{"Bishan", []da.Connection{
		{Destination: "Orchard", Minutes: 5, Line: "NSL"},
		{Destination: "Caldecott", Minutes: 4, Line: "CCL"},
		{Destination: "Serangoon", Minutes: 5, Line: "CCL"},
	}},
	{"Caldecott", []da.Connection{
		{Destination: "Bishan", Minutes: 4, Line: "CCL"},
		{Destination: "Stevens", Minutes: 5, Line: "TEL"},
	}},
	{"Tampines", []da.Connection{
		{Destination: "Tanah Merah", Minutes: 5, Line: "EWL"},
		{Destination: "MacPherson", Minutes: 13, Line: "DTL"},
		{Destination: "Expo", Minutes: 6, Line: "DTL"},
	}},
	{"Gardens by the Bay", []da.Connection{
		{Destination: "Marina Bay", Minutes: 3, Line: "TEL"},
	}},
	{"Stevens", []da.Connection{
		{Destination: "Promenade", Minutes: 11, Line: "DTL"},
		{Destination: "Orchard", Minutes: 5, Line: "TEL"},
		{Destination: "Caldecott", Minutes: 5, Line: "TEL"},
	}},
}

var futureTable = []adjacency{
	{"Changi Airport", []da.Connection{
		{Destination: "Expo", Minutes: 8, Line: "TEL"},
		{Destination: "Pasir Ris", Minutes: 18, Line: "CRL"},
		{Destination: "T5", Minutes: 6, Line: "CRL"},
		{Destination: "T5", Minutes: 10, Line: "TEL"},
	}},
	{"Expo", []da.Connection{
		{Destination: "Changi Airport", Minutes: 8, Line: "TEL"},
		{Destination: "Tanah Merah", Minutes: 4, Line: "TEL"},
		{Destination: "Tampines", Minutes: 6, Line: "DTL"},
		{Destination: "Sungei Bedok", Minutes: 8, Line: "DTL"},
	}},
	{"Tanah Merah", []da.Connection{
		{Destination: "Expo", Minutes: 4, Line: "TEL"},
		{Destination: "Paya Lebar", Minutes: 10, Line: "EWL"},
		{Destination: "Tampines", Minutes: 5, Line: "EWL"},
	}},
	{"Sungei Bedok", []da.Connection{
		{Destination: "Gardens by the Bay", Minutes: 26, Line: "TEL"},
		{Destination: "T5", Minutes: 5, Line: "TEL"},
		{Destination: "Expo", Minutes: 8, Line: "DTL"},
	}},
	{"T5", []da.Connection{
		{Destination: "Sungei Bedok", Minutes: 5, Line: "TEL"},
		{Destination: "Changi Airport", Minutes: 6, Line: "CRL"},
		{Destination: "Changi Airport", Minutes: 10, Line: "TEL"},
	}},
	{"Gardens by the Bay", []da.Connection{
		{Destination: "Marina Bay", Minutes: 3, Line: "TEL"},
		{Destination: "Sungei Bedok", Minutes: 26, Line: "TEL"},
	}},
	{"Stevens", []da.Connection{
		{Destination: "Promenade", Minutes: 11, Line: "DTL"},
		{Destination: "Orchard", Minutes: 5, Line: "TEL"},
		{Destination: "Caldecott", Minutes: 5, Line: "TEL"},
	}},
	{"Punggol", []da.Connection{
		{Destination: "Pasir Ris", Minutes: 6, Line: "CRL2"},
		{Destination: "Hougang", Minutes: 8, Line: "NEL"},
	}},
	{"Hougang", []da.Connection{
		{Destination: "Punggol", Minutes: 8, Line: "NEL"},
		{Destination: "Pasir Ris", Minutes: 10, Line: "CRL"},
		{Destination: "Ang Mo Kio", Minutes: 10, Line: "CRL"},
		{Destination: "Serangoon", Minutes: 4, Line: "NEL"},
	}},
	{"Pasir Ris", []da.Connection{
		{Destination: "Hougang", Minutes: 10, Line: "CRL"},
		{Destination: "Tampines", Minutes: 6, Line: "EWL"},
		{Destination: "Changi Airport", Minutes: 18, Line: "CRL"},
		{Destination: "Punggol", Minutes: 6, Line: "CRL2"},
	}},
	{"Ang Mo Kio", []da.Connection{
		{Destination: "Hougang", Minutes: 10, Line: "CRL"},
		{Destination: "Bishan", Minutes: 3, Line: "NSL"},
		{Destination: "Bright Hill", Minutes: 6, Line: "CRL"},
	}},
	{"Bright Hill", []da.Connection{
		{Destination: "Caldecott", Minutes: 3, Line: "TEL"},
		{Destination: "Ang Mo Kio", Minutes: 6, Line: "CRL"},
	}},
	{"Paya Lebar", []da.Connection{
		{Destination: "Tanah Merah", Minutes: 10, Line: "EWL"},
		{Destination: "MacPherson", Minutes: 3, Line: "CCL"},
		{Destination: "City Hall", Minutes: 12, Line: "EWL"},
		{Destination: "Promenade", Minutes: 10, Line: "CCL"},
	}},
	{"City Hall", []da.Connection{
		{Destination: "Marina Bay", Minutes: 3, Line: "NSL"},
		{Destination: "Dhoby Ghaut", Minutes: 2, Line: "NSL"},
		{Destination: "Outram Park", Minutes: 5, Line: "EWL"},
		{Destination: "Paya Lebar", Minutes: 12, Line: "EWL"},
	}},
	{"Outram Park", []da.Connection{
		{Destination: "City Hall", Minutes: 5, Line: "EWL"},
		{Destination: "Orchard", Minutes: 4, Line: "TEL"},
		{Destination: "Dhoby Ghaut", Minutes: 6, Line: "NEL"},
		{Destination: "Harbourfront", Minutes: 3, Line: "NEL"},
		{Destination: "Marina Bay", Minutes: 2, Line: "TEL"},
	}},
	{"Harbourfront", []da.Connection{
		{Destination: "Outram Park", Minutes: 3, Line: "NEL"},
		{Destination: "Marina Bay", Minutes: 9, Line: "CCL"},
	}},
	{"MacPherson", []da.Connection{
		{Destination: "Paya Lebar", Minutes: 3, Line: "CCL"},
		{Destination: "Serangoon", Minutes: 7, Line: "CCL"},
		{Destination: "Tampines", Minutes: 13, Line: "DTL"},
		{Destination: "Promenade", Minutes: 21, Line: "DTL"},
	}},
	{"Promenade", []da.Connection{
		{Destination: "Paya Lebar", Minutes: 10, Line: "CCL"},
		{Destination: "Marina Bay", Minutes: 4, Line: "CCL"},
		{Destination: "MacPherson", Minutes: 21, Line: "DTL"},
		{Destination: "Dhoby Ghaut", Minutes: 6, Line: "CCL2"},
		{Destination: "Stevens", Minutes: 11, Line: "DTL"},
	}},
	{"Serangoon", []da.Connection{
		{Destination: "MacPherson", Minutes: 7, Line: "CCL"},
		{Destination: "Bishan", Minutes: 5, Line: "CCL"},
		{Destination: "Dhoby Ghaut", Minutes: 13, Line: "NEL"},
		{Destination: "Hougang", Minutes: 4, Line: "NEL"},
	}},
	{"Caldecott", []da.Connection{
		{Destination: "Bishan", Minutes: 4, Line: "CCL"},
		{Destination: "Stevens", Minutes: 5, Line: "TEL"},
		{Destination: "Bright Hill", Minutes: 3, Line: "TEL"},
	}},
	{"Marina Bay", []da.Connection{
		{Destination: "Promenade", Minutes: 4, Line: "CCL"},
		{Destination: "City Hall", Minutes: 3, Line: "NSL"},
		{Destination: "Gardens by the Bay", Minutes: 3, Line: "TEL"},
		{Destination: "Outram Park", Minutes: 2, Line: "TEL"},
		{Destination: "Harbourfront", Minutes: 9, Line: "CCL"},
	}},
	{"Dhoby Ghaut", []da.Connection{
		{Destination: "City Hall", Minutes: 2, Line: "NSL"},
		{Destination: "Orchard", Minutes: 3, Line: "NSL"},
		{Destination: "Outram Park", Minutes: 6, Line: "NEL"},
		{Destination: "Serangoon", Minutes: 13, Line: "NEL"},
		{Destination: "Promenade", Minutes: 6, Line: "CCL2"},
	}},
	{"Orchard", []da.Connection{
		{Destination: "Dhoby Ghaut", Minutes: 3, Line: "NSL"},
		{Destination: "Bishan", Minutes: 5, Line: "NSL"},
		{Destination: "Outram Park", Minutes: 4, Line: "TEL"},
		{Destination: "Stevens", Minutes: 5, Line: "TEL"},
	}},
	{"Bishan", []da.Connection{
		{Destination: "Orchard", Minutes: 5, Line: "NSL"},
		{Destination: "Caldecott", Minutes: 4, Line: "CCL"},
		{Destination: "Serangoon", Minutes: 5, Line: "CCL"},
		{Destination: "Ang Mo Kio", Minutes: 3, Line: "NSL"},
	}},
	{"Tampines", []da.Connection{
		{Destination: "Tanah Merah", Minutes: 5, Line: "EWL"},
		{Destination: "Pasir Ris", Minutes: 6, Line: "EWL"},
		{Destination: "MacPherson", Minutes: 13, Line: "DTL"},
		{Destination: "Expo", Minutes: 6, Line: "DTL"},
	}},
}
