package patterns

// Category names, grouped into the five pattern families.
const (
	// Politeness family (Brown & Levinson).
	PositivePoliteness = "positive_politeness"
	Hedges             = "hedges"
	FaceThreatening    = "face_threatening"
	IndirectAggression = "indirect_aggression"

	// Speech act family (Austin/Searle).
	Directives  = "directives"
	Expressives = "expressives"
	Accusations = "accusations"
	Challenges  = "challenges"

	// Argument quality family.
	EvidenceMarkers = "evidence_markers"
	Acknowledgment  = "acknowledgment"
	Constructive    = "constructive"
	Dismissive      = "dismissive"

	// Fallacy family.
	AdHominem         = "ad_hominem"
	Strawman          = "strawman"
	AppealToAuthority = "appeal_to_authority"
	MovingGoalposts   = "moving_goalposts"
	Whataboutism      = "whataboutism"

	// Special pattern family.
	Stonewalling             = "stonewalling"
	Threats                  = "threats"
	DismissWithoutEngagement = "dismiss_without_engagement"
)

// Positive politeness builds rapport and lowers drama.
var positivePolitenessPhrases = []string{
	"great point", "good point", "good idea", "nice work",
	"I agree", "you're right", "that's right", "exactly",
	"thanks for", "thank you for", "appreciate",
	"makes sense", "fair point", "fair enough",
	"well said", "good catch", "nice catch",
	"I like", "love this", "this is great",
}

// Hedges soften statements (negative politeness).
var hedgePhrases = []string{
	"I think", "I believe", "I feel",
	"maybe", "perhaps", "possibly",
	"might", "could be", "may be",
	"I wonder", "I'm wondering",
	"not sure", "I'm not certain",
	"it seems", "it appears", "it looks like",
	"in my opinion", "from my perspective",
	"correct me if I'm wrong", "I could be wrong",
	"if I understand correctly",
}

// Face-threatening acts attack another participant's standing directly.
var faceThreateningPhrases = []string{
	"you're wrong", "you are wrong", "that's wrong", "that is wrong",
	"you don't understand", "you do not understand",
	"you're missing", "you are missing",
	"you failed to", "you forgot to",
	"you should have", "you should know",
	"you always", "you never",
	"obviously", "clearly you", "apparently you",
	"anyone can see", "everyone knows",
	"that's not how", "that is not how",
	"you need to", "you must", "you have to",
	"how can you", "why would you", "why didn't you",
}

// Indirect aggression is passive-aggressive or sarcastic framing.
var indirectAggressionPhrases = []string{
	"with all due respect", "no offense but", "no offense,",
	"I'm just saying", "just saying",
	"interesting that you", "funny how you",
	"so you're saying", "let me get this straight",
	"if you had read", "if you actually read",
	"as I already said", "as I mentioned before",
	"I don't know how else to explain",
}

var directiveExprs = []string{
	`(?i)\byou should\b`,
	`(?i)\byou need to\b`,
	`(?i)\byou must\b`,
	`(?i)\byou have to\b`,
	`(?i)\bplease\s+(do|stop|consider|read|look)\b`,
	`(?i)\bstop\s+\w+ing\b`,
	`(?i)\bdon't\s+\w+\b`,
	`(?i)\bgo\s+(read|look|check)\b`,
}

var expressiveExprs = []string{
	`(?i)\bI('m| am) (frustrated|annoyed|confused|disappointed|tired)\b`,
	`(?i)\bthis is (ridiculous|absurd|insane|crazy|nonsense|garbage)\b`,
	`(?i)\bwhat a (waste|joke|mess)\b`,
	`(?i)\bunbelievable\b`,
	`(?i)\bfrustrating\b`,
	`(?i)\bdisappointing\b`,
}

var accusationExprs = []string{
	`(?i)\byou (broke|ruined|caused|created|introduced)\b`,
	`(?i)\bthis is your (fault|mistake|problem)\b`,
	`(?i)\byou're (the one|responsible|to blame)\b`,
	`(?i)\bbecause of you\b`,
	`(?i)\byou made this\b`,
}

var challengeExprs = []string{
	`(?i)\bdo you (even|actually|really) (understand|know|read)\b`,
	`(?i)\bhave you (even|actually|ever) (read|looked|tried|used)\b`,
	`(?i)\bdo you understand\b`,
	`(?i)\bcan you (even|actually)\b`,
	`(?i)\bare you (sure|serious|kidding)\b`,
}

// Evidence markers: citations, data, measurements. Raise quality.
var evidenceMarkerExprs = []string{
	`https?://\S+`,
	`(?i)\b(BIP|PR|issue)[\s\-]?\d+\b`,
	`(?i)\bcommit\s+[a-f0-9]{6,}\b`,
	`(?i)\b(the |my )?(data|benchmark|test|spec|measurement)s?\s+(show|indicate|suggest)\b`,
	`(?i)\baccording to\b`,
	`(?i)\bin my (testing|experience|analysis)\b`,
	`(?i)\bmeasured\b`,
	`(?i)\b\d+(\.\d+)?\s*(ms|MB|KB|GB|%|x faster|x slower)\b`,
}

var acknowledgmentPhrases = []string{
	"you're right", "you are right", "that's true", "that is true",
	"fair point", "good point", "valid point",
	"I see your point", "I understand your point",
	"I agree with", "I concede", "you have a point",
	"that's a good question", "that's valid",
	"I hadn't considered", "I didn't think of",
	"you make a good point", "that's a fair criticism",
}

var constructivePhrases = []string{
	"what if we", "what about",
	"an alternative", "another option", "alternatively",
	"we could", "we might", "we should consider",
	"I suggest", "I propose", "I recommend",
	"how about", "perhaps we could",
	"one solution", "one approach", "one way",
	"I'd be happy to", "I can", "I will",
	"let me", "I'll submit", "I'll create", "I'll open",
}

var dismissivePhrases = []string{
	"that's wrong", "that is wrong", "wrong", "incorrect", "false",
	"no.", "nope", "nah",
	"doesn't matter", "irrelevant", "off-topic",
	"not worth", "waste of time", "pointless",
	"already addressed", "already discussed", "already answered",
	"you're missing the point", "that's not the issue",
	"I'm done", "I give up", "whatever",
}

var adHominemExprs = []string{
	`(?i)\byou('re| are) (just|always|never|only)\b`,
	`(?i)\bcoming from you\b`,
	`(?i)\bof course you('d| would)\b`,
	`(?i)\btypical of you\b`,
	`(?i)\bpeople like you\b`,
	`(?i)\byou('re| are) the (kind|type|sort) of\b`,
}

var strawmanExprs = []string{
	`(?i)\bso you('re| are) saying\b`,
	`(?i)\bwhat you('re| are) really (saying|meaning|suggesting)\b`,
	`(?i)\bin other words,?\s*you\b`,
	`(?i)\blet me get this straight\b`,
	`(?i)\bso basically you\b`,
}

var appealToAuthorityExprs = []string{
	`(?i)\b\d+\s*(years?|yrs?)\s*(of experience|experience|in)\b`,
	`(?i)\bI('ve| have) been (doing|working|contributing)\b`,
	`(?i)\bas a (senior|core|experienced|long-time)\b`,
	`(?i)\bin my \d+ years\b`,
	`(?i)\bI('ve| have) been here (since|longer)\b`,
}

var movingGoalpostsExprs = []string{
	`(?i)\b(but |okay,?\s*)?what about\b`,
	`(?i)\bthat('s| is) not what I meant\b`,
	`(?i)\bI never said\b`,
	`(?i)\byou('re| are) missing the point\b`,
	`(?i)\bthat('s| is) not the issue\b`,
}

var whataboutismExprs = []string{
	`(?i)\bwhat about (when|the time)\b`,
	`(?i)\bbut (you|they|he|she) also\b`,
	`(?i)\byeah but what about\b`,
	`(?i)\bwhat about your\b`,
}

// Stonewalling: shutdown, refusal to engage further.
var stonewallingPhrases = []string{
	"no.", "nope.", "wrong.", "incorrect.",
	"already addressed", "already discussed", "already answered",
	"I'm done", "done discussing", "not going to",
	"this conversation is over", "I won't", "refuse to",
	"not worth my time", "waste of time",
	"I have nothing more to say", "said all I'm going to say",
}

// Threat / ultimatum language.
var threatPhrases = []string{
	"I'll fork", "I will fork", "going to fork",
	"I'll leave", "I'm leaving", "I quit", "I'm done",
	"if this merges", "if you do this",
	"consider this my resignation", "count me out",
}

var dismissWithoutEngagementExprs = []string{
	`(?im)^(no|wrong|incorrect|false|nope)\.?$`,
	`(?im)^(nonsense|garbage|rubbish|bs)\.?$`,
	`(?i)\bnot even worth\b`,
}

// Library is the registry mapping category names to compiled pattern sets.
// Build it once at startup and inject it into the analyzer; it is read-only
// afterwards and safe for concurrent use.
type Library struct {
	sets map[string]*PatternSet
}

// NewLibrary builds the full default catalog.
func NewLibrary() *Library {
	sets := map[string]*PatternSet{
		PositivePoliteness: NewPhraseSet(PositivePoliteness, positivePolitenessPhrases, true),
		Hedges:             NewPhraseSet(Hedges, hedgePhrases, true),
		FaceThreatening:    NewPhraseSet(FaceThreatening, faceThreateningPhrases, true),
		IndirectAggression: NewPhraseSet(IndirectAggression, indirectAggressionPhrases, true),

		Directives:  NewRegexSet(Directives, directiveExprs),
		Expressives: NewRegexSet(Expressives, expressiveExprs),
		Accusations: NewRegexSet(Accusations, accusationExprs),
		Challenges:  NewRegexSet(Challenges, challengeExprs),

		EvidenceMarkers: NewRegexSet(EvidenceMarkers, evidenceMarkerExprs),
		Acknowledgment:  NewPhraseSet(Acknowledgment, acknowledgmentPhrases, true),
		Constructive:    NewPhraseSet(Constructive, constructivePhrases, true),
		Dismissive:      NewPhraseSet(Dismissive, dismissivePhrases, true),

		AdHominem:         NewRegexSet(AdHominem, adHominemExprs),
		Strawman:          NewRegexSet(Strawman, strawmanExprs),
		AppealToAuthority: NewRegexSet(AppealToAuthority, appealToAuthorityExprs),
		MovingGoalposts:   NewRegexSet(MovingGoalposts, movingGoalpostsExprs),
		Whataboutism:      NewRegexSet(Whataboutism, whataboutismExprs),

		Stonewalling:             NewPhraseSet(Stonewalling, stonewallingPhrases, true),
		Threats:                  NewPhraseSet(Threats, threatPhrases, true),
		DismissWithoutEngagement: NewRegexSet(DismissWithoutEngagement, dismissWithoutEngagementExprs),
	}
	return &Library{sets: sets}
}

// NewLibraryWithExtras builds the default catalog extended with additional
// literal phrases per category (typically from the config file). Unknown
// category names must be rejected by config validation before this point;
// they are ignored here.
func NewLibraryWithExtras(extras map[string][]string) *Library {
	lib := NewLibrary()
	for cat, phrases := range extras {
		if set, ok := lib.sets[cat]; ok && len(phrases) > 0 {
			lib.sets[cat] = set.extend(phrases)
		}
	}
	return lib
}

// Count returns the match count for one category. Unknown categories count 0.
func (l *Library) Count(category, text string) int {
	set, ok := l.sets[category]
	if !ok {
		return 0
	}
	return set.CountMatches(text)
}

// Set returns the pattern set registered for category.
func (l *Library) Set(category string) (*PatternSet, bool) {
	s, ok := l.sets[category]
	return s, ok
}

// Categories returns all registered category names, unordered.
func (l *Library) Categories() []string {
	out := make([]string, 0, len(l.sets))
	for name := range l.sets {
		out = append(out, name)
	}
	return out
}

var knownCategories = map[string]struct{}{
	PositivePoliteness: {}, Hedges: {}, FaceThreatening: {}, IndirectAggression: {},
	Directives: {}, Expressives: {}, Accusations: {}, Challenges: {},
	EvidenceMarkers: {}, Acknowledgment: {}, Constructive: {}, Dismissive: {},
	AdHominem: {}, Strawman: {}, AppealToAuthority: {}, MovingGoalposts: {}, Whataboutism: {},
	Stonewalling: {}, Threats: {}, DismissWithoutEngagement: {},
}

// ValidCategory reports whether name is a known category of the default
// catalog. Used by config validation for extra_patterns keys.
func ValidCategory(name string) bool {
	_, ok := knownCategories[name]
	return ok
}
