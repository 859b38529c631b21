package content

// yearOneDevotionals is indexed by week-1 and pairs with yearOne.
var yearOneDevotionals = []devotionalEntry{
	{"In the Beginning", "Before there was anything, there was God. He made the sky, the sea and every living thing just by speaking.", "What is your favorite thing God made?"},
	{"Wonderfully Made", "God planned your eyes, your laugh and your name. You are not an accident. You are His idea.", "Thank God for one thing about how He made you."},
	{"A Good Father", "Everything good we enjoy comes from God's hand. Sunshine, food and friends are gifts from Him.", "Name three good gifts God gave you today."},
	{"Loved First", "God did not wait for us to be good before He loved us. He loved us first.", "How can you show someone God's love this week?"},
	{"A New Command", "Jesus asked His friends to love each other the way He loved them. That kind of love shares and forgives.", "Who is someone hard to love that you can be kind to?"},
	{"Tender Hearts", "Kindness notices when someone is sad and does something about it.", "What kind thing can you do for someone at home?"},
	{"With All Your Heart", "Loving God means He gets our first and best, not our leftovers.", "What does it look like to love God with your whole heart?"},
	{"New Every Morning", "Even after a hard day, God's love is waiting for us fresh each morning.", "What can you thank God for when you wake up?"},
	{"God's Own Son", "Jesus is not just a good teacher. He is God's Son who came to live with us.", "Why do you think God sent Jesus?"},
	{"Light in the Dark", "When we follow Jesus, we never have to walk in darkness. He shows us the way.", "When do you feel scared of the dark, and how can Jesus help?"},
	{"The Shepherd Knows", "A shepherd knows every sheep by name. Jesus knows you by name too.", "How does it feel to be known and cared for?"},
	{"Room for Children", "Jesus was never too busy for children. He welcomed them and blessed them.", "What would you say to Jesus if you sat with Him?"},
	{"Why the Cross", "Jesus took the punishment for our wrong so we could be close to God.", "Say thank you to Jesus for what He did on the cross."},
	{"The Empty Tomb", "On the third day the tomb was empty. Jesus is alive, and death could not hold Him.", "Who can you tell that Jesus is alive?"},
	{"The Only Way", "Jesus is the road home to God. We do not have to find another path.", "What does it mean that Jesus is the way?"},
	{"Washed Clean", "When we tell God we are sorry, He forgives us and makes us clean.", "Is there anything you need to tell God you are sorry for?"},
	{"Talk to God", "Prayer is talking with God any time and anywhere. He always listens.", "When is a good time for you to pray each day?"},
	{"He Hears", "No prayer is too small for God. He hears every one.", "What would you like to ask God today?"},
	{"Thankful Hearts", "Saying thank you to God changes how we see our day.", "Make a list of five things you are thankful for."},
	{"Ask, Seek, Knock", "God loves it when we come to Him with our needs.", "What is something you want to ask God for?"},
	{"Honor at Home", "Obeying our parents is one way we obey God.", "How can you help your parents this week?"},
	{"Hear and Do", "Listening to God's word is good. Doing what it says is even better.", "What is one thing from the Bible you can do today?"},
	{"Truth Tellers", "Telling the truth can be hard, but God delights in honest hearts.", "Why is telling the truth important?"},
	{"Helping Hands", "Jesus came to serve, and He asks us to serve others too.", "Who can you help without being asked?"},
	{"Strong and Brave", "We can be brave because God goes with us wherever we go.", "What makes you feel afraid, and how is God with you?"},
	{"Fear Goes Away", "When we feel afraid, we can choose to trust God.", "Say a short prayer for the next time you feel scared."},
	{"Straight Paths", "We do not need to understand everything to trust the One who does.", "What is something you need to trust God with?"},
	{"Never Alone", "Jesus promised to be with us always, even to the end of the age.", "Where did you notice God with you today?"},
	{"Joy in the Lord", "Joy is more than being happy. It is knowing God is with us in every season.", "What brings you joy about knowing God?"},
	{"Perfect Peace", "Jesus gives a peace the world cannot give or take away.", "When do you need God's peace the most?"},
	{"Waiting Well", "Waiting is hard, but God is never late.", "What are you waiting for, and how can you wait patiently?"},
	{"Good Fruit", "When God's Spirit lives in us, good fruit like love and patience grows.", "Which fruit of the Spirit do you want to grow?"},
	{"True Words", "Every word God speaks is true. We can build our lives on it.", "Why can we trust the Bible?"},
	{"Treasure Inside", "Learning God's word by heart keeps it close when we need it.", "Which verse do you want to remember forever?"},
	{"Forever Words", "Flowers fade and grass dries up, but God's word lasts forever.", "What lasts forever, and what does not?"},
	{"Building on Rock", "Wise builders listen to Jesus and do what He says.", "What does it mean to build your life on the rock?"},
	{"A Clean Heart", "Only God can give us a clean heart and a fresh start.", "Ask God to give you a clean heart today."},
	{"Others First", "Humble people think about others and not only themselves.", "How can you put someone else first today?"},
	{"Letting Go", "God forgave us, so we can forgive others.", "Is there someone you need to forgive?"},
	{"A Good Friend", "Good friends love at all times, and Jesus is the best friend of all.", "How can you be a good friend this week?"},
	{"Daily Bread", "God feeds the birds and He will take care of us too.", "How has God taken care of you?"},
	{"Cheerful Giving", "God loves a cheerful giver because He is the greatest giver.", "What can you give away with a happy heart?"},
	{"Count Your Blessings", "Remembering what God has done fills our hearts with thanks.", "Tell someone one thing God has done for you."},
	{"Shine Bright", "We share the good news by what we say and by how we live.", "How can your light shine at school or at home?"},
	{"The Promise", "Long before Jesus was born, God promised a Savior would come.", "Why do you think God keeps His promises?"},
	{"Great Joy", "The angels brought good news for all people: a Savior is born.", "Who needs to hear this good news?"},
	{"Come and Worship", "The wise men traveled far to worship the King. We can worship Him right where we are.", "How can you worship Jesus this week?"},
	{"The Best Gift", "Jesus is the greatest gift ever given, and He is free for everyone who believes.", "How can you thank God for His gift?"},
}

// fallbackDevotionals covers a week with no library entry, tiered by age.
var fallbackDevotionals = map[int]devotionalEntry{
	4: {"God Loves You", "God made you and God loves you very much.", "Give God a big thank you!"},
	5: {"God Is With You", "God is with you when you play, when you eat and when you sleep.", "Where is a place God is with you?"},
	6: {"God Cares for You", "God cares about everything that matters to you, big or small.", "Tell God about your day."},
	7: {"God Keeps His Promises", "The Bible is full of promises, and God keeps every one of them.", "What is a promise God made that you remember?"},
	8: {"Walking With God", "Following Jesus is a daily walk. Each day we can listen, trust and obey.", "What is one step of faith you can take this week?"},
}

func fallbackDevotionalFor(age int) devotionalEntry {
	switch {
	case age <= 4:
		return fallbackDevotionals[4]
	case age >= 8:
		return fallbackDevotionals[8]
	default:
		return fallbackDevotionals[age]
	}
}
