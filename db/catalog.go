package db

import "github.com/Soneshaps/musicgpt-clone/models"

// voiceCatalog is the stock voice list shipped with the product.
var voiceCatalog = []models.Voice{
	{Name: "Emma Watson", Language: "english"},
	{Name: "Morgan Freeman", Language: "english"},
	{Name: "Scarlett Johansson", Language: "english"},
	{Name: "Tom Hanks", Language: "english"},
	{Name: "Jennifer Lawrence", Language: "english"},
	{Name: "Leonardo DiCaprio", Language: "english"},
	{Name: "Meryl Streep", Language: "english"},
	{Name: "Brad Pitt", Language: "english"},
	{Name: "Angelina Jolie", Language: "english"},
	{Name: "Johnny Depp", Language: "english"},
	{Name: "Chris Evans", Language: "english"},
	{Name: "Chris Hemsworth", Language: "english"},
	{Name: "Robert Downey Jr.", Language: "english"},
	{Name: "Mark Ruffalo", Language: "english"},
	{Name: "Tom Holland", Language: "english"},
	{Name: "Zendaya", Language: "english"},
	{Name: "Anne Hathaway", Language: "english"},
	{Name: "Denzel Washington", Language: "english"},
	{Name: "Will Smith", Language: "english"},
	{Name: "Natalie Portman", Language: "english"},
	{Name: "Keira Knightley", Language: "english"},
	{Name: "Hugh Jackman", Language: "english"},
	{Name: "Daniel Radcliffe", Language: "english"},
	{Name: "Rupert Grint", Language: "english"},
	{Name: "Matthew McConaughey", Language: "english"},
	{Name: "Jake Gyllenhaal", Language: "english"},
	{Name: "Christian Bale", Language: "english"},
	{Name: "Heath Ledger", Language: "english"},
	{Name: "Emma Stone", Language: "english"},
	{Name: "Ryan Gosling", Language: "english"},
	{Name: "Narayan Gopal", Language: "nepali"},
	{Name: "Ambar Gurung", Language: "nepali"},
	{Name: "Tara Devi", Language: "nepali"},
	{Name: "Kumar Basnet", Language: "nepali"},
	{Name: "Sabin Rai", Language: "nepali"},
	{Name: "Deepak Bajracharya", Language: "nepali"},
	{Name: "Nepathya", Language: "nepali"},
	{Name: "Phiroj Shyangden", Language: "nepali"},
	{Name: "Adrian Pradhan", Language: "nepali"},
	{Name: "Swoopna Suman", Language: "nepali"},
	{Name: "Ani Choying Dolma", Language: "nepali"},
	{Name: "Prakash Shrestha", Language: "nepali"},
	{Name: "Ram Krishna Dhakal", Language: "nepali"},
	{Name: "Udit Narayan Jha", Language: "nepali"},
	{Name: "Manoj Kumar KC", Language: "nepali"},
	{Name: "Rajesh Payal Rai", Language: "nepali"},
	{Name: "Sugam Pokharel", Language: "nepali"},
	{Name: "Anju Panta", Language: "nepali"},
	{Name: "Nima Rumba", Language: "nepali"},
	{Name: "Shiva Pariyar", Language: "nepali"},
	{Name: "Hemanta Rana", Language: "nepali"},
	{Name: "Karma Band", Language: "nepali"},
	{Name: "Satya Raj Acharya", Language: "nepali"},
	{Name: "Sanjay Shrestha", Language: "nepali"},
	{Name: "Kunti Moktan", Language: "nepali"},
	{Name: "Aruna Lama", Language: "nepali"},
	{Name: "Melina Rai", Language: "nepali"},
	{Name: "Astha Raut", Language: "nepali"},
	{Name: "Pramod Kharel", Language: "nepali"},
	{Name: "Indira Joshi", Language: "nepali"},
	{Name: "Amitabh Bachchan", Language: "indian"},
	{Name: "Lata Mangeshkar", Language: "indian"},
	{Name: "Shah Rukh Khan", Language: "indian"},
	{Name: "Aishwarya Rai", Language: "indian"},
	{Name: "Priyanka Chopra", Language: "indian"},
	{Name: "Deepika Padukone", Language: "indian"},
	{Name: "Ranbir Kapoor", Language: "indian"},
	{Name: "Alia Bhatt", Language: "indian"},
	{Name: "Aamir Khan", Language: "indian"},
	{Name: "Kajol", Language: "indian"},
	{Name: "Kishore Kumar", Language: "indian"},
	{Name: "Arijit Singh", Language: "indian"},
	{Name: "Sonu Nigam", Language: "indian"},
	{Name: "Sunidhi Chauhan", Language: "indian"},
	{Name: "Shreya Ghoshal", Language: "indian"},
	{Name: "Salman Khan", Language: "indian"},
	{Name: "Hrithik Roshan", Language: "indian"},
	{Name: "Kangana Ranaut", Language: "indian"},
	{Name: "Rani Mukerji", Language: "indian"},
	{Name: "Rajinikanth", Language: "indian"},
	{Name: "Madhuri Dixit", Language: "indian"},
	{Name: "Rekha", Language: "indian"},
	{Name: "Juhi Chawla", Language: "indian"},
	{Name: "Anil Kapoor", Language: "indian"},
	{Name: "Farhan Akhtar", Language: "indian"},
	{Name: "Zoya Akhtar", Language: "indian"},
	{Name: "Ayushmann Khurrana", Language: "indian"},
	{Name: "Vicky Kaushal", Language: "indian"},
	{Name: "Kriti Sanon", Language: "indian"},
	{Name: "Varun Dhawan", Language: "indian"},
}
