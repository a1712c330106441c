package content

// words is the bundled word-builder table. Every entry assembles: its
// characters joined in order spell the word.
var words = map[string][]Word{
	"hindi": {
		{ID: "h1", Word: "कमल", Meaning: "Lotus", Characters: []string{"क", "म", "ल"}},
		{ID: "h2", Word: "पुस्तक", Meaning: "Book", Characters: []string{"प", "ु", "स", "्", "त", "क"}},
		{ID: "h3", Word: "स्कूल", Meaning: "School", Characters: []string{"स", "्", "क", "ू", "ल"}},
		{ID: "h4", Word: "मित्र", Meaning: "Friend", Characters: []string{"म", "ि", "त", "्", "र"}},
		{ID: "h5", Word: "विद्यालय", Meaning: "School", Characters: []string{"व", "ि", "द", "्", "य", "ा", "ल", "य"}},
		{ID: "h6", Word: "स्वागत", Meaning: "Welcome", Characters: []string{"स", "्", "व", "ा", "ग", "त"}},
		{ID: "h7", Word: "प्रकाश", Meaning: "Light", Characters: []string{"प", "्", "र", "क", "ा", "श"}},
		{ID: "h8", Word: "सुंदर", Meaning: "Beautiful", Characters: []string{"स", "ु", "ं", "द", "र"}},
	},
	"tamil": {
		{ID: "t1", Word: "மலர்", Meaning: "Flower", Characters: []string{"ம", "ல", "ர்"}},
		{ID: "t2", Word: "புத்தகம்", Meaning: "Book", Characters: []string{"ப", "ு", "த்", "த", "க", "ம்"}},
		{ID: "t3", Word: "பள்ளி", Meaning: "School", Characters: []string{"ப", "ள்", "ள", "ி"}},
		{ID: "t4", Word: "நண்பர்", Meaning: "Friend", Characters: []string{"ந", "ண", "்", "ப", "ர்"}},
		{ID: "t5", Word: "விளக்கு", Meaning: "Light", Characters: []string{"வ", "ி", "ள", "க்", "க", "ு"}},
		{ID: "t6", Word: "வரவேற்பு", Meaning: "Welcome", Characters: []string{"வ", "ர", "வ", "ே", "ற", "்", "ப", "ு"}},
		{ID: "t7", Word: "அழகு", Meaning: "Beautiful", Characters: []string{"அ", "ழ", "க", "ு"}},
		{ID: "t8", Word: "கல்வி", Meaning: "Education", Characters: []string{"க", "ல்", "வ", "ி"}},
	},
	"bengali": {
		{ID: "b1", Word: "ফুল", Meaning: "Flower", Characters: []string{"ফ", "ু", "ল"}},
		{ID: "b2", Word: "বই", Meaning: "Book", Characters: []string{"ব", "ই"}},
		{ID: "b3", Word: "স্কুল", Meaning: "School", Characters: []string{"স", "্", "ক", "ু", "ল"}},
		{ID: "b4", Word: "বন্ধু", Meaning: "Friend", Characters: []string{"ব", "ন", "্", "ধ", "ু"}},
		{ID: "b5", Word: "বিদ্যালয়", Meaning: "School", Characters: []string{"ব", "ি", "দ", "্", "য", "া", "ল", "য়"}},
		{ID: "b6", Word: "স্বাগত", Meaning: "Welcome", Characters: []string{"স", "্", "ব", "া", "গ", "ত"}},
		{ID: "b7", Word: "আলো", Meaning: "Light", Characters: []string{"আ", "ল", "ো"}},
		{ID: "b8", Word: "সুন্দর", Meaning: "Beautiful", Characters: []string{"স", "ু", "ন", "্", "দ", "র"}},
	},
	"telugu": {
		{ID: "te1", Word: "పువ్వు", Meaning: "Flower", Characters: []string{"ప", "ు", "వ", "్", "వ", "ు"}},
		{ID: "te2", Word: "పుస్తకం", Meaning: "Book", Characters: []string{"ప", "ు", "స", "్", "త", "క", "ం"}},
		{ID: "te3", Word: "బడి", Meaning: "School", Characters: []string{"బ", "డ", "ి"}},
		{ID: "te4", Word: "స్నేహితుడు", Meaning: "Friend", Characters: []string{"స", "్", "న", "ే", "హ", "ి", "త", "ు", "డ", "ు"}},
		{ID: "te5", Word: "విద్యాలయం", Meaning: "School", Characters: []string{"వ", "ి", "ద", "్", "య", "ా", "ల", "య", "ం"}},
		{ID: "te6", Word: "స్వాగతం", Meaning: "Welcome", Characters: []string{"స", "్", "వ", "ా", "గ", "త", "ం"}},
		{ID: "te7", Word: "కాంతి", Meaning: "Light", Characters: []string{"క", "ా", "ం", "త", "ి"}},
		{ID: "te8", Word: "అందమైన", Meaning: "Beautiful", Characters: []string{"అ", "ం", "ద", "మ", "ై", "న"}},
	},
	"kannada": {
		{ID: "k1", Word: "ಹೂವು", Meaning: "Flower", Characters: []string{"ಹ", "ೂ", "ವ", "ು"}},
		{ID: "k2", Word: "ಪುಸ್ತಕ", Meaning: "Book", Characters: []string{"ಪ", "ು", "ಸ", "್", "ತ", "ಕ"}},
		{ID: "k3", Word: "ಶಾಲೆ", Meaning: "School", Characters: []string{"ಶ", "ಾ", "ಲ", "ೆ"}},
		{ID: "k4", Word: "ಸ್ನೇಹಿತ", Meaning: "Friend", Characters: []string{"ಸ", "್", "ನ", "ೇ", "ಹ", "ಿ", "ತ"}},
		{ID: "k5", Word: "ವಿದ್ಯಾಲಯ", Meaning: "School", Characters: []string{"ವ", "ಿ", "ದ", "್", "ಯ", "ಾ", "ಲ", "ಯ"}},
		{ID: "k6", Word: "ಸ್ವಾಗತ", Meaning: "Welcome", Characters: []string{"ಸ", "್", "ವ", "ಾ", "ಗ", "ತ"}},
		{ID: "k7", Word: "ಬೆಳಕು", Meaning: "Light", Characters: []string{"ಬ", "ೆ", "ಳ", "ಕ", "ು"}},
		{ID: "k8", Word: "ಸುಂದರ", Meaning: "Beautiful", Characters: []string{"ಸ", "ು", "ಂ", "ದ", "ರ"}},
	},
	"malayalam": {
		{ID: "m1", Word: "പൂവ്", Meaning: "Flower", Characters: []string{"പ", "ൂ", "വ", "്"}},
		{ID: "m2", Word: "പുസ്തകം", Meaning: "Book", Characters: []string{"പ", "ു", "സ", "്", "ത", "ക", "ം"}},
		{ID: "m3", Word: "വിദ്യാലയം", Meaning: "School", Characters: []string{"വ", "ി", "ദ", "്", "യ", "ാ", "ല", "യ", "ം"}},
		{ID: "m4", Word: "സുഹൃത്ത്", Meaning: "Friend", Characters: []string{"സ", "ു", "ഹ", "ൃ", "ത", "്", "ത", "്"}},
		{ID: "m5", Word: "സ്വാഗതം", Meaning: "Welcome", Characters: []string{"സ", "്", "വ", "ാ", "ഗ", "ത", "ം"}},
		{ID: "m6", Word: "വെളിച്ചം", Meaning: "Light", Characters: []string{"വ", "െ", "ള", "ി", "ച", "്", "ച", "ം"}},
		{ID: "m7", Word: "സുന്ദരം", Meaning: "Beautiful", Characters: []string{"സ", "ു", "ന", "്", "ദ", "ര", "ം"}},
		{ID: "m8", Word: "പാഠശാല", Meaning: "School", Characters: []string{"പ", "ാ", "ഠ", "ശ", "ാ", "ല"}},
	},
}
