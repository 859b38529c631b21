package content

// yearOne is the authored first-year library. Weeks 49-52 are review weeks
// that reuse weeks 1-4.
var yearOne = []WeekContent{
	{
		Week: 1, Month: "January", ThemeYoung: "God Made Everything", ThemeOld: "The Creator of All Things",
		VerseA: [4]string{
			"God created. — Genesis 1:1",
			"In the beginning God created. — Genesis 1:1",
			"In the beginning God created the heavens. — Genesis 1:1",
			"In the beginning God created the heavens and the earth. — Genesis 1:1",
		},
		VerseB: [4]string{
			"The earth is the Lord's. — Psalm 24:1",
			"The earth is the Lord's, and all of it. — Psalm 24:1",
			"The earth is the Lord's, and everything in it. — Psalm 24:1",
			"The earth is the Lord's, and everything in it, the world and all who live in it. — Psalm 24:1",
		},
		OlderVerse:     "For by him all things were created, in the heavens and on the earth, visible and invisible.",
		OlderReference: "Colossians 1:16",
	},
	{
		Week: 2, Month: "January", ThemeYoung: "God Made Me", ThemeOld: "Made in His Image",
		VerseA: [4]string{
			"I am wonderfully made. — Psalm 139:14",
			"I praise you, I am wonderfully made. — Psalm 139:14",
			"I praise you, for I am fearfully and wonderfully made. — Psalm 139:14",
			"I will praise you, for I am fearfully and wonderfully made. Your works are wonderful. — Psalm 139:14",
		},
		VerseB: [4]string{
			"God made people. — Genesis 1:27",
			"God created people like himself. — Genesis 1:27",
			"God created man in his own image. — Genesis 1:27",
			"God created man in his own image; male and female he created them. — Genesis 1:27",
		},
		OlderVerse:     "For you formed my inmost being. You knit me together in my mother's womb.",
		OlderReference: "Psalm 139:13",
	},
	{
		Week: 3, Month: "January", ThemeYoung: "God Is Good", ThemeOld: "The Goodness of God",
		VerseA: [4]string{
			"The Lord is good. — Psalm 107:1",
			"Give thanks, the Lord is good. — Psalm 107:1",
			"Give thanks to the Lord, for he is good. — Psalm 107:1",
			"Give thanks to the Lord, for he is good, for his loving kindness endures forever. — Psalm 107:1",
		},
		VerseB: [4]string{
			"Taste and see. — Psalm 34:8",
			"Taste and see that God is good. — Psalm 34:8",
			"Taste and see that the Lord is good. — Psalm 34:8",
			"Taste and see that the Lord is good. Blessed is the one who takes refuge in him. — Psalm 34:8",
		},
		OlderVerse:     "Every good gift and every perfect gift is from above, coming down from the Father of lights.",
		OlderReference: "James 1:17",
	},
	{
		Week: 4, Month: "January", ThemeYoung: "God Is Love", ThemeOld: "The Love of God",
		VerseA: [4]string{
			"God is love. — 1 John 4:8",
			"God is love, always. — 1 John 4:8",
			"Whoever loves knows God, for God is love. — 1 John 4:8",
			"He who doesn't love doesn't know God, for God is love. — 1 John 4:8",
		},
		VerseB: [4]string{
			"We love. — 1 John 4:19",
			"We love because God loved us. — 1 John 4:19",
			"We love him, because he first loved us. — 1 John 4:19",
			"We love him, because he first loved us, and we love each other too. — 1 John 4:19",
		},
		OlderVerse:     "But God commends his own love toward us, in that while we were yet sinners, Christ died for us.",
		OlderReference: "Romans 5:8",
	},
	{
		Week: 5, Month: "February", ThemeYoung: "Love One Another", ThemeOld: "Loving Others",
		VerseA: [4]string{
			"Love one another. — John 13:34",
			"Jesus said, love one another. — John 13:34",
			"Love one another, just as I have loved you. — John 13:34",
			"A new commandment I give to you, that you love one another, just as I have loved you. — John 13:34",
		},
		VerseB: [4]string{
			"Love is from God. — 1 John 4:7",
			"Let us love, love is from God. — 1 John 4:7",
			"Let us love one another, for love is of God. — 1 John 4:7",
			"Beloved, let us love one another, for love is of God; everyone who loves knows God. — 1 John 4:7",
		},
		OlderVerse:     "Love is patient and is kind. Love doesn't envy. Love doesn't brag, is not proud.",
		OlderReference: "1 Corinthians 13:4",
	},
	{
		Week: 6, Month: "February", ThemeYoung: "Be Kind", ThemeOld: "Kindness and Compassion",
		VerseA: [4]string{
			"Be kind. — Ephesians 4:32",
			"Be kind to one another. — Ephesians 4:32",
			"Be kind to one another, tenderhearted. — Ephesians 4:32",
			"Be kind to one another, tenderhearted, forgiving each other, just as God forgave you. — Ephesians 4:32",
		},
		VerseB: [4]string{
			"Put on kindness. — Colossians 3:12",
			"Put on kindness and gentleness. — Colossians 3:12",
			"Put on a heart of compassion and kindness. — Colossians 3:12",
			"Put on a heart of compassion, kindness, lowliness, humility, and perseverance. — Colossians 3:12",
		},
		OlderVerse:     "Whatever you did for one of the least of these my brothers, you did it to me.",
		OlderReference: "Matthew 25:40",
	},
	{
		Week: 7, Month: "February", ThemeYoung: "Love God", ThemeOld: "The Greatest Commandment",
		VerseA: [4]string{
			"Love the Lord. — Deuteronomy 6:5",
			"Love the Lord your God. — Deuteronomy 6:5",
			"Love the Lord your God with all your heart. — Deuteronomy 6:5",
			"You shall love the Lord your God with all your heart, with all your soul, and with all your might. — Deuteronomy 6:5",
		},
		VerseB: [4]string{
			"Love your neighbor. — Matthew 22:39",
			"Love your neighbor like you. — Matthew 22:39",
			"Love your neighbor as yourself. — Matthew 22:39",
			"A second likewise is this: you shall love your neighbor as yourself. — Matthew 22:39",
		},
		OlderVerse:     "You shall love the Lord your God with all your heart, with all your soul, and with all your mind.",
		OlderReference: "Matthew 22:37",
	},
	{
		Week: 8, Month: "February", ThemeYoung: "God's Love Never Ends", ThemeOld: "Steadfast Love",
		VerseA: [4]string{
			"His love lasts forever. — Psalm 136:1",
			"God is good, his love lasts forever. — Psalm 136:1",
			"Give thanks to the Lord, for his love lasts forever. — Psalm 136:1",
			"Give thanks to the Lord, for he is good; for his loving kindness endures forever. — Psalm 136:1",
		},
		VerseB: [4]string{
			"New every morning. — Lamentations 3:23",
			"His mercies are new every morning. — Lamentations 3:23",
			"His mercies are new every morning; great is your faithfulness. — Lamentations 3:23",
			"His compassion doesn't fail. It is new every morning. Great is your faithfulness. — Lamentations 3:23",
		},
		OlderVerse:     "Nothing in all creation will be able to separate us from the love of God, which is in Christ Jesus our Lord.",
		OlderReference: "Romans 8:39",
	},
	{
		Week: 9, Month: "March", ThemeYoung: "Jesus Is God's Son", ThemeOld: "Who Jesus Is",
		VerseA: [4]string{
			"God loved the world. — John 3:16",
			"God so loved the world he gave his Son. — John 3:16",
			"God so loved the world that he gave his only Son. — John 3:16",
			"For God so loved the world, that he gave his only born Son, that whoever believes in him should have eternal life. — John 3:16",
		},
		VerseB: [4]string{
			"You are the Christ. — Matthew 16:16",
			"You are the Christ, God's Son. — Matthew 16:16",
			"You are the Christ, the Son of the living God. — Matthew 16:16",
			"Simon Peter answered, \"You are the Christ, the Son of the living God.\" — Matthew 16:16",
		},
		OlderVerse:     "The Word became flesh and lived among us. We saw his glory, full of grace and truth.",
		OlderReference: "John 1:14",
	},
	{
		Week: 10, Month: "March", ThemeYoung: "Jesus Is the Light", ThemeOld: "The Light of the World",
		VerseA: [4]string{
			"Jesus is the light. — John 8:12",
			"I am the light of the world. — John 8:12",
			"Jesus said, \"I am the light of the world.\" — John 8:12",
			"I am the light of the world. He who follows me will not walk in the darkness. — John 8:12",
		},
		VerseB: [4]string{
			"Your word is a lamp. — Psalm 119:105",
			"Your word is a lamp to my feet. — Psalm 119:105",
			"Your word is a lamp to my feet, and a light. — Psalm 119:105",
			"Your word is a lamp to my feet, and a light for my path. — Psalm 119:105",
		},
		OlderVerse:     "I am the light of the world. He who follows me will not walk in the darkness, but will have the light of life.",
		OlderReference: "John 8:12",
	},
	{
		Week: 11, Month: "March", ThemeYoung: "Jesus Is My Shepherd", ThemeOld: "The Good Shepherd",
		VerseA: [4]string{
			"I am the good shepherd. — John 10:11",
			"Jesus is the good shepherd. — John 10:11",
			"I am the good shepherd, Jesus said. — John 10:11",
			"I am the good shepherd. The good shepherd lays down his life for the sheep. — John 10:11",
		},
		VerseB: [4]string{
			"The Lord is my shepherd. — Psalm 23:1",
			"The Lord is my shepherd, always. — Psalm 23:1",
			"The Lord is my shepherd; I have what I need. — Psalm 23:1",
			"The Lord is my shepherd; I shall lack nothing. He makes me lie down in green pastures. — Psalm 23:1",
		},
		OlderVerse:     "My sheep hear my voice, and I know them, and they follow me.",
		OlderReference: "John 10:27",
	},
	{
		Week: 12, Month: "March", ThemeYoung: "Jesus Loves Children", ThemeOld: "Come to Jesus",
		VerseA: [4]string{
			"Let the children come. — Mark 10:14",
			"Let the little children come to me. — Mark 10:14",
			"Jesus said, \"Let the little children come to me.\" — Mark 10:14",
			"Allow the little children to come to me! Don't forbid them, for God's Kingdom belongs to such as these. — Mark 10:14",
		},
		VerseB: [4]string{
			"Come to me. — Matthew 11:28",
			"Come to me, and I will give you rest. — Matthew 11:28",
			"Come to me, all you who are tired, and I will give you rest. — Matthew 11:28",
			"Come to me, all you who labor and are heavily burdened, and I will give you rest. — Matthew 11:28",
		},
		OlderVerse:     "Allow the little children, and don't forbid them to come to me; for the Kingdom of Heaven belongs to ones like these.",
		OlderReference: "Matthew 19:14",
	},
	{
		Week: 13, Month: "April", ThemeYoung: "Jesus Died for Me", ThemeOld: "The Cross",
		VerseA: [4]string{
			"Christ died for us. — 1 Corinthians 15:3",
			"Christ died for our sins. — 1 Corinthians 15:3",
			"Christ died for our sins, just as the Bible said. — 1 Corinthians 15:3",
			"Christ died for our sins according to the Scriptures, and he was buried. — 1 Corinthians 15:3",
		},
		VerseB: [4]string{
			"By his wounds we are healed. — Isaiah 53:5",
			"He was hurt for us; we are healed. — Isaiah 53:5",
			"He was pierced for our sins; by his wounds we are healed. — Isaiah 53:5",
			"He was pierced for our transgressions. He was crushed for our iniquities; by his wounds we are healed. — Isaiah 53:5",
		},
		OlderVerse:     "He himself bore our sins in his body on the tree, that we, having died to sins, might live to righteousness.",
		OlderReference: "1 Peter 2:24",
	},
	{
		Week: 14, Month: "April", ThemeYoung: "Jesus Is Alive", ThemeOld: "The Resurrection",
		VerseA: [4]string{
			"He is risen! — Matthew 28:6",
			"He is not here; he is risen! — Matthew 28:6",
			"He is not here, for he has risen, just as he said. — Matthew 28:6",
			"He is not here, for he has risen, just like he said. Come, see the place where the Lord was lying. — Matthew 28:6",
		},
		VerseB: [4]string{
			"Jesus is the life. — John 11:25",
			"I am the resurrection and the life. — John 11:25",
			"Jesus said, \"I am the resurrection and the life.\" — John 11:25",
			"I am the resurrection and the life. He who believes in me will still live, even if he dies. — John 11:25",
		},
		OlderVerse:     "But now Christ has been raised from the dead. He became the first fruit of those who are asleep.",
		OlderReference: "1 Corinthians 15:20",
	},
	{
		Week: 15, Month: "April", ThemeYoung: "Jesus Is the Way", ThemeOld: "The Way, the Truth and the Life",
		VerseA: [4]string{
			"Jesus is the way. — John 14:6",
			"I am the way and the truth. — John 14:6",
			"I am the way, the truth, and the life. — John 14:6",
			"I am the way, the truth, and the life. No one comes to the Father, except through me. — John 14:6",
		},
		VerseB: [4]string{
			"Jesus saves. — Acts 4:12",
			"Salvation is in Jesus alone. — Acts 4:12",
			"There is salvation in no one else but Jesus. — Acts 4:12",
			"There is salvation in no one else, for there is no other name under heaven by which we must be saved. — Acts 4:12",
		},
		OlderVerse:     "I am the way, the truth, and the life. No one comes to the Father, except through me.",
		OlderReference: "John 14:6",
	},
	{
		Week: 16, Month: "April", ThemeYoung: "God Forgives", ThemeOld: "Forgiveness",
		VerseA: [4]string{
			"God forgives. — 1 John 1:9",
			"If we say sorry, God forgives. — 1 John 1:9",
			"If we confess our sins, he is faithful to forgive us. — 1 John 1:9",
			"If we confess our sins, he is faithful and righteous to forgive us the sins, and to cleanse us from all unrighteousness. — 1 John 1:9",
		},
		VerseB: [4]string{
			"As far as east from west. — Psalm 103:12",
			"He takes our sins far away. — Psalm 103:12",
			"As far as the east is from the west, so far he takes our sins. — Psalm 103:12",
			"As far as the east is from the west, so far has he removed our transgressions from us. — Psalm 103:12",
		},
		OlderVerse:     "In him we have our redemption through his blood, the forgiveness of our trespasses, according to the riches of his grace.",
		OlderReference: "Ephesians 1:7",
	},
	{
		Week: 17, Month: "May", ThemeYoung: "Talk to God", ThemeOld: "A Life of Prayer",
		VerseA: [4]string{
			"Pray always. — 1 Thessalonians 5:17",
			"Pray without stopping. — 1 Thessalonians 5:17",
			"Pray without ceasing, every day. — 1 Thessalonians 5:17",
			"Pray without ceasing. In everything give thanks. — 1 Thessalonians 5:17",
		},
		VerseB: [4]string{
			"Tell God everything. — Philippians 4:6",
			"Don't worry; pray about everything. — Philippians 4:6",
			"Don't worry about anything, but pray about everything. — Philippians 4:6",
			"In nothing be anxious, but in everything, by prayer with thanksgiving, let your requests be made known to God. — Philippians 4:6",
		},
		OlderVerse:     "In nothing be anxious, but in everything, by prayer and petition with thanksgiving, let your requests be made known to God.",
		OlderReference: "Philippians 4:6",
	},
	{
		Week: 18, Month: "May", ThemeYoung: "God Hears Me", ThemeOld: "God Hears and Answers",
		VerseA: [4]string{
			"The Lord hears. — Psalm 34:17",
			"When I cry, the Lord hears. — Psalm 34:17",
			"The righteous cry, and the Lord hears them. — Psalm 34:17",
			"The righteous cry, and the Lord hears, and delivers them out of all their troubles. — Psalm 34:17",
		},
		VerseB: [4]string{
			"Call to me. — Jeremiah 33:3",
			"Call to me, and I will answer. — Jeremiah 33:3",
			"Call to me, and I will answer you, says the Lord. — Jeremiah 33:3",
			"Call to me, and I will answer you, and will show you great and difficult things, which you don't know. — Jeremiah 33:3",
		},
		OlderVerse:     "This is the boldness which we have toward him, that if we ask anything according to his will, he listens to us.",
		OlderReference: "1 John 5:14",
	},
	{
		Week: 19, Month: "May", ThemeYoung: "Say Thank You", ThemeOld: "A Thankful Heart",
		VerseA: [4]string{
			"Give thanks. — 1 Thessalonians 5:18",
			"Give thanks in everything. — 1 Thessalonians 5:18",
			"In everything give thanks to God. — 1 Thessalonians 5:18",
			"In everything give thanks, for this is the will of God in Christ Jesus toward you. — 1 Thessalonians 5:18",
		},
		VerseB: [4]string{
			"Come with thanks. — Psalm 100:4",
			"Enter his gates with thanks. — Psalm 100:4",
			"Enter into his gates with thanksgiving and praise. — Psalm 100:4",
			"Enter into his gates with thanksgiving, into his courts with praise. Give thanks to him, and bless his name. — Psalm 100:4",
		},
		OlderVerse:     "Whatever you do, in word or in deed, do all in the name of the Lord Jesus, giving thanks to God the Father through him.",
		OlderReference: "Colossians 3:17",
	},
	{
		Week: 20, Month: "May", ThemeYoung: "Ask God", ThemeOld: "Asking in Faith",
		VerseA: [4]string{
			"Ask God. — Matthew 7:7",
			"Ask, and it will be given. — Matthew 7:7",
			"Ask, and it will be given you. Seek, and you will find. — Matthew 7:7",
			"Ask, and it will be given you. Seek, and you will find. Knock, and it will be opened for you. — Matthew 7:7",
		},
		VerseB: [4]string{
			"Ask God for wisdom. — James 1:5",
			"If you need wisdom, ask God. — James 1:5",
			"If any of you lacks wisdom, let him ask God. — James 1:5",
			"If any of you lacks wisdom, let him ask of God, who gives to all generously, and it will be given to him. — James 1:5",
		},
		OlderVerse:     "Ask, and it will be given you. Seek, and you will find. Knock, and it will be opened for you.",
		OlderReference: "Matthew 7:7",
	},
	{
		Week: 21, Month: "June", ThemeYoung: "Obey Your Parents", ThemeOld: "Honoring Parents",
		VerseA: [4]string{
			"Children, obey. — Ephesians 6:1",
			"Children, obey your parents. — Ephesians 6:1",
			"Children, obey your parents in the Lord. — Ephesians 6:1",
			"Children, obey your parents in the Lord, for this is right. — Ephesians 6:1",
		},
		VerseB: [4]string{
			"Honor your parents. — Exodus 20:12",
			"Honor your father and mother. — Exodus 20:12",
			"Honor your father and your mother, says the Lord. — Exodus 20:12",
			"Honor your father and your mother, that your days may be long in the land which the Lord your God gives you. — Exodus 20:12",
		},
		OlderVerse:     "Children, obey your parents in all things, for this pleases the Lord.",
		OlderReference: "Colossians 3:20",
	},
	{
		Week: 22, Month: "June", ThemeYoung: "Listen and Do", ThemeOld: "Hearing and Doing",
		VerseA: [4]string{
			"Do what God says. — James 1:22",
			"Be doers of the word. — James 1:22",
			"Be doers of the word, not only hearers. — James 1:22",
			"Be doers of the word, and not only hearers, deluding your own selves. — James 1:22",
		},
		VerseB: [4]string{
			"Hear and obey. — Luke 11:28",
			"Blessed are those who hear and obey. — Luke 11:28",
			"Blessed are those who hear the word of God and keep it. — Luke 11:28",
			"On the contrary, blessed are those who hear the word of God, and keep it. — Luke 11:28",
		},
		OlderVerse:     "Be doers of the word, and not only hearers, deluding your own selves.",
		OlderReference: "James 1:22",
	},
	{
		Week: 23, Month: "June", ThemeYoung: "Tell the Truth", ThemeOld: "Honesty",
		VerseA: [4]string{
			"Speak truth. — Ephesians 4:25",
			"Always speak the truth. — Ephesians 4:25",
			"Put away lying and speak the truth. — Ephesians 4:25",
			"Putting away falsehood, speak truth each one with his neighbor. For we are members of one another. — Ephesians 4:25",
		},
		VerseB: [4]string{
			"God loves truth. — Proverbs 12:22",
			"The Lord delights in truth. — Proverbs 12:22",
			"Those who tell the truth are God's delight. — Proverbs 12:22",
			"Lying lips are an abomination to the Lord, but those who do the truth are his delight. — Proverbs 12:22",
		},
		OlderVerse:     "Don't lie to one another, seeing that you have put off the old man with his doings.",
		OlderReference: "Colossians 3:9",
	},
	{
		Week: 24, Month: "June", ThemeYoung: "Be a Helper", ThemeOld: "Serving Others",
		VerseA: [4]string{
			"Serve one another. — Galatians 5:13",
			"Serve one another in love. — Galatians 5:13",
			"Through love, serve one another. — Galatians 5:13",
			"You were called for freedom; only don't use it for the flesh, but through love be servants to one another. — Galatians 5:13",
		},
		VerseB: [4]string{
			"Jesus came to serve. — Mark 10:45",
			"Jesus came to serve others. — Mark 10:45",
			"The Son of Man came not to be served, but to serve. — Mark 10:45",
			"The Son of Man came not to be served, but to serve, and to give his life as a ransom for many. — Mark 10:45",
		},
		OlderVerse:     "As each has received a gift, employ it in serving one another, as good managers of the grace of God.",
		OlderReference: "1 Peter 4:10",
	},
	{
		Week: 25, Month: "July", ThemeYoung: "Be Brave", ThemeOld: "Courage",
		VerseA: [4]string{
			"Be strong. — Joshua 1:9",
			"Be strong and brave. — Joshua 1:9",
			"Be strong and courageous. God is with you. — Joshua 1:9",
			"Be strong and courageous. Don't be afraid, for the Lord your God is with you wherever you go. — Joshua 1:9",
		},
		VerseB: [4]string{
			"God won't leave me. — Deuteronomy 31:6",
			"God will never leave you. — Deuteronomy 31:6",
			"Be strong; he will not fail you or leave you. — Deuteronomy 31:6",
			"Be strong and courageous. Don't be afraid, for the Lord your God himself goes with you. He will not fail you. — Deuteronomy 31:6",
		},
		OlderVerse:     "Be strong and courageous. Don't be afraid. Don't be dismayed, for the Lord your God is with you wherever you go.",
		OlderReference: "Joshua 1:9",
	},
	{
		Week: 26, Month: "July", ThemeYoung: "Don't Be Afraid", ThemeOld: "Faith Over Fear",
		VerseA: [4]string{
			"I trust you. — Psalm 56:3",
			"When I am afraid, I trust. — Psalm 56:3",
			"When I am afraid, I will trust in you. — Psalm 56:3",
			"When I am afraid, I will put my trust in you. In God, I put my trust. — Psalm 56:3",
		},
		VerseB: [4]string{
			"Don't be afraid. — Isaiah 41:10",
			"Don't be afraid, I am with you. — Isaiah 41:10",
			"Don't be afraid, for I am with you. I am your God. — Isaiah 41:10",
			"Don't be afraid, for I am with you. Don't be dismayed, for I am your God. I will strengthen you. — Isaiah 41:10",
		},
		OlderVerse:     "For God didn't give us a spirit of fear, but of power, love, and self-control.",
		OlderReference: "2 Timothy 1:7",
	},
	{
		Week: 27, Month: "July", ThemeYoung: "Trust God", ThemeOld: "Trusting God's Path",
		VerseA: [4]string{
			"Trust the Lord. — Proverbs 3:5",
			"Trust the Lord with your heart. — Proverbs 3:5",
			"Trust in the Lord with all your heart. — Proverbs 3:5",
			"Trust in the Lord with all your heart, and don't lean on your own understanding. — Proverbs 3:5",
		},
		VerseB: [4]string{
			"I trust you, Lord. — Psalm 9:10",
			"Those who know you trust you. — Psalm 9:10",
			"Those who know your name will put their trust in you. — Psalm 9:10",
			"Those who know your name will put their trust in you, for you, Lord, have not forsaken those who seek you. — Psalm 9:10",
		},
		OlderVerse:     "In all your ways acknowledge him, and he will make your paths straight.",
		OlderReference: "Proverbs 3:6",
	},
	{
		Week: 28, Month: "July", ThemeYoung: "God Is With Me", ThemeOld: "God's Presence",
		VerseA: [4]string{
			"I am with you. — Matthew 28:20",
			"I am with you always. — Matthew 28:20",
			"Jesus said, \"I am with you always.\" — Matthew 28:20",
			"Behold, I am with you always, even to the end of the age. — Matthew 28:20",
		},
		VerseB: [4]string{
			"God is my help. — Psalm 46:1",
			"God is my refuge and strength. — Psalm 46:1",
			"God is our refuge and strength, a help in trouble. — Psalm 46:1",
			"God is our refuge and strength, a very present help in trouble. — Psalm 46:1",
		},
		OlderVerse:     "I will in no way leave you, neither will I in any way forsake you.",
		OlderReference: "Hebrews 13:5",
	},
	{
		Week: 29, Month: "August", ThemeYoung: "Be Joyful", ThemeOld: "Joy in the Lord",
		VerseA: [4]string{
			"Rejoice! — Philippians 4:4",
			"Rejoice in the Lord! — Philippians 4:4",
			"Rejoice in the Lord always! — Philippians 4:4",
			"Rejoice in the Lord always! Again I will say, \"Rejoice!\" — Philippians 4:4",
		},
		VerseB: [4]string{
			"This is God's day. — Psalm 118:24",
			"This is the day the Lord made. — Psalm 118:24",
			"This is the day that the Lord has made. Let's be glad! — Psalm 118:24",
			"This is the day that the Lord has made. We will rejoice and be glad in it! — Psalm 118:24",
		},
		OlderVerse:     "Don't be grieved, for the joy of the Lord is your strength.",
		OlderReference: "Nehemiah 8:10",
	},
	{
		Week: 30, Month: "August", ThemeYoung: "God Gives Peace", ThemeOld: "Peace That Lasts",
		VerseA: [4]string{
			"Peace I give you. — John 14:27",
			"Jesus said, my peace I give you. — John 14:27",
			"Peace I leave with you. My peace I give to you. — John 14:27",
			"Peace I leave with you. My peace I give to you. Don't let your heart be troubled. — John 14:27",
		},
		VerseB: [4]string{
			"God keeps me in peace. — Isaiah 26:3",
			"God gives perfect peace. — Isaiah 26:3",
			"You keep in perfect peace those who trust you. — Isaiah 26:3",
			"You will keep whoever's mind is steadfast in perfect peace, because he trusts in you. — Isaiah 26:3",
		},
		OlderVerse:     "Peace I leave with you. My peace I give to you; not as the world gives. Don't let your heart be troubled.",
		OlderReference: "John 14:27",
	},
	{
		Week: 31, Month: "August", ThemeYoung: "Be Patient", ThemeOld: "Patience and Waiting",
		VerseA: [4]string{
			"Be patient. — Romans 12:12",
			"Be patient and keep praying. — Romans 12:12",
			"Rejoice in hope, be patient, keep praying. — Romans 12:12",
			"Rejoice in hope, endure in troubles, continue steadfastly in prayer. — Romans 12:12",
		},
		VerseB: [4]string{
			"Wait for God. — Psalm 37:7",
			"Be still and wait for God. — Psalm 37:7",
			"Rest in the Lord, and wait patiently for him. — Psalm 37:7",
			"Rest in the Lord, and wait patiently for him. Don't fret because of him who prospers. — Psalm 37:7",
		},
		OlderVerse:     "Let's not be weary in doing good, for we will reap in due season if we don't give up.",
		OlderReference: "Galatians 6:9",
	},
	{
		Week: 32, Month: "August", ThemeYoung: "Good Fruit", ThemeOld: "The Fruit of the Spirit",
		VerseA: [4]string{
			"Love, joy, peace. — Galatians 5:22",
			"The fruit of the Spirit is love. — Galatians 5:22",
			"The fruit of the Spirit is love, joy, peace. — Galatians 5:22",
			"The fruit of the Spirit is love, joy, peace, patience, kindness, goodness, faith. — Galatians 5:22",
		},
		VerseB: [4]string{
			"Gentle and self-controlled. — Galatians 5:23",
			"Be gentle, have self-control. — Galatians 5:23",
			"Gentleness and self-control are fruit too. — Galatians 5:23",
			"Gentleness, and self-control. Against such things there is no law. — Galatians 5:23",
		},
		OlderVerse:     "The fruit of the Spirit is love, joy, peace, patience, kindness, goodness, faith, gentleness, and self-control.",
		OlderReference: "Galatians 5:22-23",
	},
	{
		Week: 33, Month: "September", ThemeYoung: "God's Word Is True", ThemeOld: "The Truth of Scripture",
		VerseA: [4]string{
			"Your word is truth. — John 17:17",
			"God's word is truth. — John 17:17",
			"Make them holy by your truth; your word is truth. — John 17:17",
			"Sanctify them in your truth. Your word is truth. — John 17:17",
		},
		VerseB: [4]string{
			"God gave us the Bible. — 2 Timothy 3:16",
			"All Scripture comes from God. — 2 Timothy 3:16",
			"Every Scripture is breathed by God and useful. — 2 Timothy 3:16",
			"Every Scripture is God-breathed and profitable for teaching, for reproof, for correction, and for instruction. — 2 Timothy 3:16",
		},
		OlderVerse:     "The word of God is living and active, and sharper than any two-edged sword.",
		OlderReference: "Hebrews 4:12",
	},
	{
		Week: 34, Month: "September", ThemeYoung: "Hide God's Word", ThemeOld: "Treasuring Scripture",
		VerseA: [4]string{
			"Your word is in my heart. — Psalm 119:11",
			"I keep your word in my heart. — Psalm 119:11",
			"I have hidden your word in my heart. — Psalm 119:11",
			"I have hidden your word in my heart, that I might not sin against you. — Psalm 119:11",
		},
		VerseB: [4]string{
			"Think about God's word. — Joshua 1:8",
			"Think about God's word day and night. — Joshua 1:8",
			"Keep God's word on your lips; think on it day and night. — Joshua 1:8",
			"This book of the law shall not depart from your mouth, but you shall meditate on it day and night. — Joshua 1:8",
		},
		OlderVerse:     "How can a young man keep his way pure? By living according to your word.",
		OlderReference: "Psalm 119:9",
	},
	{
		Week: 35, Month: "September", ThemeYoung: "God's Word Lasts", ThemeOld: "The Enduring Word",
		VerseA: [4]string{
			"God's word lasts. — Isaiah 40:8",
			"God's word lasts forever. — Isaiah 40:8",
			"The grass withers, but God's word lasts forever. — Isaiah 40:8",
			"The grass withers, the flower fades; but the word of our God stands forever. — Isaiah 40:8",
		},
		VerseB: [4]string{
			"My words stay. — Matthew 24:35",
			"My words will not pass away. — Matthew 24:35",
			"Heaven and earth will pass away, but not my words. — Matthew 24:35",
			"Heaven and earth will pass away, but my words will not pass away. — Matthew 24:35",
		},
		OlderVerse:     "But the Lord's word endures forever. This is the word of Good News which was preached to you.",
		OlderReference: "1 Peter 1:25",
	},
	{
		Week: 36, Month: "September", ThemeYoung: "Be Wise", ThemeOld: "Wisdom From Above",
		VerseA: [4]string{
			"Wisdom starts with God. — Proverbs 1:7",
			"Knowing God is the start of wisdom. — Proverbs 1:7",
			"The fear of the Lord is the beginning of knowledge. — Proverbs 1:7",
			"The fear of the Lord is the beginning of knowledge; but the foolish despise wisdom and instruction. — Proverbs 1:7",
		},
		VerseB: [4]string{
			"Build on the rock. — Matthew 7:24",
			"Hear and do, like a wise builder. — Matthew 7:24",
			"Whoever hears my words and does them is wise. — Matthew 7:24",
			"Everyone who hears these words of mine and does them is like a wise man who built his house on a rock. — Matthew 7:24",
		},
		OlderVerse:     "For the Lord gives wisdom. Out of his mouth comes knowledge and understanding.",
		OlderReference: "Proverbs 2:6",
	},
	{
		Week: 37, Month: "October", ThemeYoung: "A Clean Heart", ThemeOld: "A New Heart",
		VerseA: [4]string{
			"Make my heart clean. — Psalm 51:10",
			"God, make my heart clean. — Psalm 51:10",
			"Create in me a clean heart, O God. — Psalm 51:10",
			"Create in me a clean heart, O God. Renew a right spirit within me. — Psalm 51:10",
		},
		VerseB: [4]string{
			"The pure in heart. — Matthew 5:8",
			"Blessed are the pure in heart. — Matthew 5:8",
			"Blessed are the pure in heart, they will see God. — Matthew 5:8",
			"Blessed are the pure in heart, for they shall see God. — Matthew 5:8",
		},
		OlderVerse:     "I will also give you a new heart, and I will put a new spirit within you.",
		OlderReference: "Ezekiel 36:26",
	},
	{
		Week: 38, Month: "October", ThemeYoung: "Be Humble", ThemeOld: "Humility",
		VerseA: [4]string{
			"Be humble. — James 4:10",
			"Be humble before the Lord. — James 4:10",
			"Humble yourselves, and God will lift you up. — James 4:10",
			"Humble yourselves in the sight of the Lord, and he will exalt you. — James 4:10",
		},
		VerseB: [4]string{
			"Put others first. — Philippians 2:3",
			"Think of others as better. — Philippians 2:3",
			"In humility, count others better than yourself. — Philippians 2:3",
			"Do nothing through rivalry or conceit, but in humility, each counting others better than himself. — Philippians 2:3",
		},
		OlderVerse:     "What does the Lord require of you, but to act justly, to love mercy, and to walk humbly with your God?",
		OlderReference: "Micah 6:8",
	},
	{
		Week: 39, Month: "October", ThemeYoung: "Forgive Others", ThemeOld: "Forgiving Others",
		VerseA: [4]string{
			"Forgive. — Colossians 3:13",
			"Forgive like God forgives. — Colossians 3:13",
			"Forgive each other, as the Lord forgave you. — Colossians 3:13",
			"Bear with one another, and forgive each other. As the Lord forgave you, so you also do. — Colossians 3:13",
		},
		VerseB: [4]string{
			"Forgive others. — Matthew 6:14",
			"When you forgive, God forgives. — Matthew 6:14",
			"If you forgive others, your Father will forgive you. — Matthew 6:14",
			"For if you forgive men their trespasses, your heavenly Father will also forgive you. — Matthew 6:14",
		},
		OlderVerse:     "Set free, and you will be set free. Forgive, and you will be forgiven.",
		OlderReference: "Luke 6:37",
	},
	{
		Week: 40, Month: "October", ThemeYoung: "Be a Friend", ThemeOld: "True Friendship",
		VerseA: [4]string{
			"A friend loves. — Proverbs 17:17",
			"A friend loves all the time. — Proverbs 17:17",
			"A friend loves at all times. — Proverbs 17:17",
			"A friend loves at all times; and a brother is born for adversity. — Proverbs 17:17",
		},
		VerseB: [4]string{
			"Great love. — John 15:13",
			"Jesus showed the greatest love. — John 15:13",
			"No one has greater love than to give his life for friends. — John 15:13",
			"Greater love has no one than this, that someone lay down his life for his friends. — John 15:13",
		},
		OlderVerse:     "Two are better than one, because they have a good reward for their labor.",
		OlderReference: "Ecclesiastes 4:9",
	},
	{
		Week: 41, Month: "November", ThemeYoung: "God Takes Care of Me", ThemeOld: "God Provides",
		VerseA: [4]string{
			"God gives me what I need. — Philippians 4:19",
			"My God will give all I need. — Philippians 4:19",
			"My God will supply every need of yours. — Philippians 4:19",
			"My God will supply every need of yours according to his riches in glory in Christ Jesus. — Philippians 4:19",
		},
		VerseB: [4]string{
			"Look at the birds. — Matthew 6:26",
			"God feeds the birds. — Matthew 6:26",
			"Look at the birds; your Father feeds them. — Matthew 6:26",
			"See the birds of the sky, that they don't sow, but your heavenly Father feeds them. Aren't you of much more value? — Matthew 6:26",
		},
		OlderVerse:     "But seek first God's Kingdom and his righteousness; and all these things will be given to you as well.",
		OlderReference: "Matthew 6:33",
	},
	{
		Week: 42, Month: "November", ThemeYoung: "Give Cheerfully", ThemeOld: "Generosity",
		VerseA: [4]string{
			"Give with a smile. — 2 Corinthians 9:7",
			"God loves a cheerful giver. — 2 Corinthians 9:7",
			"Give from your heart, for God loves a cheerful giver. — 2 Corinthians 9:7",
			"Let each man give according as he has determined in his heart, not grudgingly, for God loves a cheerful giver. — 2 Corinthians 9:7",
		},
		VerseB: [4]string{
			"Giving is good. — Acts 20:35",
			"It is better to give. — Acts 20:35",
			"It is more blessed to give than to receive. — Acts 20:35",
			"Remember the words of the Lord Jesus: \"It is more blessed to give than to receive.\" — Acts 20:35",
		},
		OlderVerse:     "Give, and it will be given to you: good measure, pressed down, shaken together, and running over.",
		OlderReference: "Luke 6:38",
	},
	{
		Week: 43, Month: "November", ThemeYoung: "Give Thanks", ThemeOld: "Gratitude",
		VerseA: [4]string{
			"I will give thanks. — Psalm 9:1",
			"I will thank you, Lord. — Psalm 9:1",
			"I will give thanks to the Lord with my whole heart. — Psalm 9:1",
			"I will give thanks to the Lord with my whole heart. I will tell of all your marvelous works. — Psalm 9:1",
		},
		VerseB: [4]string{
			"Come and thank him. — Psalm 95:2",
			"Let's come to God with thanks. — Psalm 95:2",
			"Let's come before his presence with thanksgiving. — Psalm 95:2",
			"Let's come before his presence with thanksgiving. Let's extol him with songs! — Psalm 95:2",
		},
		OlderVerse:     "For the Lord is good. His loving kindness endures forever, his faithfulness to all generations.",
		OlderReference: "Psalm 100:5",
	},
	{
		Week: 44, Month: "November", ThemeYoung: "Share the Good News", ThemeOld: "Being a Witness",
		VerseA: [4]string{
			"Tell everyone. — Mark 16:15",
			"Go and tell the good news. — Mark 16:15",
			"Go into all the world and tell the good news. — Mark 16:15",
			"Go into all the world, and preach the Good News to the whole creation. — Mark 16:15",
		},
		VerseB: [4]string{
			"Let your light shine. — Matthew 5:16",
			"Let your light shine for all. — Matthew 5:16",
			"Let your light shine so others see your good works. — Matthew 5:16",
			"Let your light shine before men, that they may see your good works and glorify your Father in heaven. — Matthew 5:16",
		},
		OlderVerse:     "For I am not ashamed of the Good News of Christ, for it is the power of God for salvation for everyone who believes.",
		OlderReference: "Romans 1:16",
	},
	{
		Week: 45, Month: "December", ThemeYoung: "Jesus Is Coming", ThemeOld: "The Promised Savior",
		VerseA: [4]string{
			"A child is born. — Isaiah 9:6",
			"To us a child is born. — Isaiah 9:6",
			"For to us a child is born; to us a son is given. — Isaiah 9:6",
			"For to us a child is born. To us a son is given. His name will be called Wonderful Counselor, Mighty God. — Isaiah 9:6",
		},
		VerseB: [4]string{
			"He is Immanuel. — Isaiah 7:14",
			"His name is Immanuel. — Isaiah 7:14",
			"A son will be born, and his name is Immanuel. — Isaiah 7:14",
			"The virgin will conceive, and bear a son, and shall call his name Immanuel. — Isaiah 7:14",
		},
		OlderVerse:     "But you, Bethlehem, though you are little among the clans of Judah, out of you one will come to rule in Israel.",
		OlderReference: "Micah 5:2",
	},
	{
		Week: 46, Month: "December", ThemeYoung: "Good News of Great Joy", ThemeOld: "Good News for All People",
		VerseA: [4]string{
			"Good news! — Luke 2:10",
			"Don't be afraid, here is good news! — Luke 2:10",
			"I bring you good news of great joy. — Luke 2:10",
			"Don't be afraid, for behold, I bring you good news of great joy which will be to all the people. — Luke 2:10",
		},
		VerseB: [4]string{
			"A Savior is born. — Luke 2:11",
			"Today a Savior is born. — Luke 2:11",
			"Today a Savior is born, who is Christ the Lord. — Luke 2:11",
			"For there is born to you today, in David's city, a Savior, who is Christ the Lord. — Luke 2:11",
		},
		OlderVerse:     "For there is born to you today, in David's city, a Savior, who is Christ the Lord.",
		OlderReference: "Luke 2:11",
	},
	{
		Week: 47, Month: "December", ThemeYoung: "Glory to God", ThemeOld: "Worship the King",
		VerseA: [4]string{
			"Glory to God! — Luke 2:14",
			"Glory to God in the highest! — Luke 2:14",
			"Glory to God in the highest, peace on earth! — Luke 2:14",
			"Glory to God in the highest, on earth peace, good will toward men. — Luke 2:14",
		},
		VerseB: [4]string{
			"We worship him. — Matthew 2:2",
			"We came to worship him. — Matthew 2:2",
			"We saw his star and came to worship him. — Matthew 2:2",
			"Where is he who is born King of the Jews? For we saw his star in the east, and have come to worship him. — Matthew 2:2",
		},
		OlderVerse:     "Oh come, let's worship and bow down. Let's kneel before the Lord, our Maker.",
		OlderReference: "Psalm 95:6",
	},
	{
		Week: 48, Month: "December", ThemeYoung: "God's Greatest Gift", ThemeOld: "The Gift of Grace",
		VerseA: [4]string{
			"Thank you, God! — 2 Corinthians 9:15",
			"Thanks to God for his gift! — 2 Corinthians 9:15",
			"Thanks be to God for his wonderful gift! — 2 Corinthians 9:15",
			"Now thanks be to God for his unspeakable gift! — 2 Corinthians 9:15",
		},
		VerseB: [4]string{
			"God gives life. — Romans 6:23",
			"God's gift is life forever. — Romans 6:23",
			"The free gift of God is eternal life. — Romans 6:23",
			"For the wages of sin is death, but the free gift of God is eternal life in Christ Jesus our Lord. — Romans 6:23",
		},
		OlderVerse:     "For by grace you have been saved through faith, and that not of yourselves; it is the gift of God.",
		OlderReference: "Ephesians 2:8",
	},
}
