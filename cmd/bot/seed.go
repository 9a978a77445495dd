package main

import "wordtrainer/internal/domain"

// seedWords is the shared dictionary for the memory store; it matches the
// 000002 seed migration
var seedWords = []domain.WordPair{
	{En: "red", Ru: "красный"},
	{En: "green", Ru: "зелёный"},
	{En: "blue", Ru: "синий"},
	{En: "white", Ru: "белый"},
	{En: "black", Ru: "чёрный"},
	{En: "i", Ru: "я"},
	{En: "you", Ru: "ты"},
	{En: "he", Ru: "он"},
	{En: "she", Ru: "она"},
	{En: "we", Ru: "мы"},
	{En: "cat", Ru: "кошка"},
	{En: "dog", Ru: "собака"},
	{En: "house", Ru: "дом"},
	{En: "water", Ru: "вода"},
	{En: "sun", Ru: "солнце"},
	{En: "book", Ru: "книга"},
	{En: "table", Ru: "стол"},
	{En: "window", Ru: "окно"},
	{En: "friend", Ru: "друг"},
	{En: "city", Ru: "город"},
}
