package repository

import "github.com/duynhne/bookstore-service/internal/core/domain"

// SeedCatalog returns the bookstore's launch catalog. Books are seeded at
// process start with empty review maps and are never deleted.
func SeedCatalog() map[string]*domain.Book {
	return map[string]*domain.Book{
		"1":  {Title: "Things Fall Apart", Author: "Chinua Achebe", Reviews: map[string]string{}},
		"2":  {Title: "Fairy tales", Author: "Hans Christian Andersen", Reviews: map[string]string{}},
		"3":  {Title: "The Divine Comedy", Author: "Dante Alighieri", Reviews: map[string]string{}},
		"4":  {Title: "The Epic Of Gilgamesh", Author: "Unknown", Reviews: map[string]string{}},
		"5":  {Title: "The Book Of Job", Author: "Unknown", Reviews: map[string]string{}},
		"6":  {Title: "One Thousand and One Nights", Author: "Unknown", Reviews: map[string]string{}},
		"7":  {Title: "Njál's Saga", Author: "Unknown", Reviews: map[string]string{}},
		"8":  {Title: "Pride and Prejudice", Author: "Jane Austen", Reviews: map[string]string{}},
		"9":  {Title: "Le Père Goriot", Author: "Honoré de Balzac", Reviews: map[string]string{}},
		"10": {Title: "The Diary of a Young Girl", Author: "Anne Frank", Reviews: map[string]string{}},
	}
}
