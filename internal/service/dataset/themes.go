package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/heartmarshall/punsmith/internal/domain"
)

// defaultThemes is the built-in theme list, grouped by topic. Every word
// appears once.
var defaultThemes = []string{
	// Food & Cooking
	"food", "pizza", "bread", "cheese", "meat", "fish", "fruit", "vegetable", "cake", "soup",
	"cookie", "sandwich", "pasta", "rice", "egg", "milk", "butter", "sugar", "salt", "pepper",
	"coffee", "tea", "wine", "beer", "juice", "water", "ice", "cream", "chocolate", "candy",
	// Animals
	"cat", "dog", "bird", "horse", "cow", "pig", "chicken", "duck", "rabbit",
	"mouse", "rat", "bear", "lion", "tiger", "elephant", "monkey", "snake", "frog", "bee",
	"ant", "spider", "butterfly", "eagle", "owl", "wolf", "fox", "deer", "sheep", "goat",
	// Nature
	"tree", "flower", "grass", "mountain", "river", "ocean", "sun", "moon", "star", "cloud",
	"rock", "stone", "sand", "dirt", "leaf", "branch", "root", "seed", "plant", "forest",
	"lake", "pond", "stream", "hill", "valley", "field", "beach", "island", "desert", "cave",
	// Technology
	"computer", "phone", "internet", "robot", "machine", "software", "hardware", "data", "code", "app",
	"screen", "keyboard", "printer", "camera", "video", "audio", "file", "program", "system",
	"network", "server", "database", "website", "email", "message", "signal", "wire", "cable", "chip",
	// Transportation
	"car", "bus", "train", "plane", "bike", "boat", "ship", "truck", "motorcycle", "subway",
	"taxi", "van", "wagon", "cart", "wheel", "tire", "engine", "fuel", "road", "bridge",
	"tunnel", "station", "airport", "port", "garage", "parking", "traffic", "speed", "brake", "horn",
	// Sports & Recreation
	"football", "basketball", "tennis", "golf", "swimming", "running", "dancing", "music", "game", "toy",
	"ball", "bat", "racket", "club", "net", "goal", "score", "team", "player", "coach",
	"court", "pool", "track", "gym", "exercise", "fitness", "sport", "race", "match",
	// Home & Living
	"house", "room", "kitchen", "bedroom", "bathroom", "garden", "furniture", "door", "window", "roof",
	"wall", "floor", "ceiling", "stairs", "basement", "attic", "yard", "fence", "gate",
	"chair", "table", "bed", "sofa", "lamp", "mirror", "picture", "clock", "carpet", "curtain",
	// Work & Education
	"school", "teacher", "student", "book", "pen", "paper", "desk", "office", "job", "work",
	"class", "lesson", "test", "exam", "grade", "homework", "project", "research", "study", "learn",
	"boss", "employee", "meeting", "report", "presentation", "interview", "salary", "career", "skill", "training",
	// Health & Body
	"doctor", "medicine", "hospital", "health", "sleep", "heart", "brain", "hand", "foot",
	"eye", "ear", "nose", "mouth", "tooth", "hair", "skin", "bone", "muscle", "blood",
	"nurse", "patient", "treatment", "cure", "pain", "injury", "disease", "fever", "cold", "flu",
	// Weather & Seasons
	"rain", "snow", "wind", "storm", "summer", "winter", "spring", "autumn", "hot",
	"warm", "cool", "dry", "wet", "sunny", "cloudy", "foggy", "thunder", "lightning", "tornado",
	"hurricane", "flood", "drought", "frost", "hail", "mist", "breeze", "gale", "blizzard",
	// Colors & Art
	"red", "blue", "green", "yellow", "black", "white", "painting", "drawing", "art", "color",
	"orange", "purple", "pink", "brown", "gray", "silver", "gold", "bronze", "bright", "dark",
	"brush", "paint", "canvas", "sketch", "portrait", "landscape", "sculpture", "gallery", "museum", "artist",
	// Time & Events
	"time", "watch", "calendar", "birthday", "holiday", "party", "wedding", "event",
	"day", "night", "morning", "evening", "hour", "minute", "second", "week", "month", "year",
	"celebration", "festival", "ceremony", "concert", "show", "performance", "dance", "theater", "movie", "film",
	// Tools & Objects
	"hammer", "nail", "screw", "drill", "saw", "knife", "fork", "spoon", "plate", "cup",
	"glass", "bottle", "jar", "box", "bag", "basket", "bucket", "rope", "chain", "lock",
	"key", "button", "zipper", "thread", "needle", "scissors", "ruler", "pencil", "eraser", "glue",
	// Clothing & Fashion
	"shirt", "pants", "dress", "skirt", "jacket", "coat", "hat", "cap", "shoe", "sock",
	"glove", "scarf", "belt", "tie", "suit", "jeans", "sweater", "hoodie", "shorts", "underwear",
	"jewelry", "ring", "necklace", "bracelet", "earring", "glasses", "sunglasses", "purse", "wallet",
	// Science & Math
	"science", "math", "physics", "chemistry", "biology", "atom", "molecule", "cell", "gene", "dna",
	"number", "equation", "formula", "theory", "experiment", "lab", "result", "proof", "logic",
	"energy", "force", "gravity", "light", "sound", "heat", "electricity", "magnet", "chemical", "element",
	// Business & Money
	"money", "dollar", "cent", "coin", "bill", "bank", "loan", "debt", "credit", "cash",
	"business", "company", "store", "shop", "market", "sale", "buy", "sell", "price", "cost",
	"profit", "loss", "investment", "stock", "bond", "insurance", "tax", "budget", "account", "finance",
}

// DefaultThemes returns a copy of the built-in theme list.
func DefaultThemes() []string {
	return slices.Clone(defaultThemes)
}

// LoadThemes reads one theme per line from path. Blank lines and lines
// starting with "#" are ignored.
func LoadThemes(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open themes %s: %w", path, err)
	}
	defer f.Close()

	themes, err := ParseThemes(f)
	if err != nil {
		return nil, fmt.Errorf("read themes %s: %w", path, err)
	}
	return themes, nil
}

// ParseThemes reads one theme per line, normalized and without repeats.
func ParseThemes(r io.Reader) ([]string, error) {
	var themes []string
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		theme := domain.NormalizeText(line)
		if _, dup := seen[theme]; dup {
			continue
		}
		seen[theme] = struct{}{}
		themes = append(themes, theme)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return themes, nil
}
