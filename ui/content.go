package ui

// Static narrative copy for each dashboard section. This is display
// data produced alongside the offline analysis, kept verbatim; the
// numbers in it are claims of that analysis, not anything this
// process computes.

const pageTitle = "Retail Rocket: Behavioural EDA Dashboard"

const pageIntro = `This interactive dashboard presents a detailed behavioural analysis of the Retail Rocket ecommerce dataset.
It is designed to support data-driven customer segmentation and latent behaviour pattern discovery through a series of empirically grounded insights.`

const eventTypeNarrative = `Out of approximately 2.75 million total events:

- View events account for ~96.7% of all interactions (2.66M), indicating high browsing activity.

- Add-to-cart events make up only ~2.5%, reflecting selective product engagement.

- Transaction events represent just ~0.8%, consistent with typical ecommerce funnel conversion rates.

This sharp drop-off from view to purchase aligns with known online consumer behaviour patterns, where most sessions are exploratory in nature and only a small fraction culminates in a purchase (Moe, 2003; Sakar et al., 2020).

Such a distribution underscores the need to model non-purchasing behaviour with equal rigour—embedding sequences based solely on conversions would neglect the rich intent signals present in cart additions and repeated views. The segmentation framework must therefore incorporate complete session sequences to reveal behavioural diversity beyond monetary action.`

const visitorActivityNarrative = `For understanding interaction variability, we visualised the distribution of event counts per visitor—both across the full range and restricted to a 0–100 event window for clearer inspection.

**Key Insights:**
- The first plot (full range) reveals a highly right-skewed distribution, with the vast majority of users interacting only a handful of times. However, a small minority (long tail) exhibit extremely high engagement, with the most active visitor recording 7,757 interactions. This reflects Pareto-like behaviour, consistent with ecommerce platforms where a minority of users contribute disproportionately to interaction volume (Montgomery et al., 2004).

- The second plot (0–100 events) highlights that over 95% of visitors engage in fewer than 100 events, with a sharp drop-off visible beyond 10–20 interactions. This suggests that while the dataset includes power users, it is dominated by low-engagement or one-time visitors, which is a common trait in publicly available ecommerce datasets (Van den Berg & Abbas, 2022; Moe, 2003).

**Relevance:**
- This behaviour supports our methodological choice to model at the session level rather than user level. Aggregating across users would conflate diverse behaviours and dilute signals from brief but meaningful interactions (Sakar et al., 2020).

- It also validates the need for unsupervised segmentation, as traditional cohorting based on fixed thresholds (e.g., top 10% by engagement) would miss the behavioural heterogeneity evident in the long tail.

In line with behavioural economics, this skew reflects diverse browsing and buying patterns—ranging from impulse drop-ins to persistent comparers—and forms the basis for downstream segmentation via neural embeddings and clustering.`

const sessionsPerVisitorIntro = `The summary shows that while most visitors initiate only 1–2 sessions, a small subset exhibits hyperactive engagement, with some exceeding 400 sessions. The top 10 most session-active users highlight this disparity:`

const sessionsPerVisitorNarrative = `This tail-heavy distribution is common in ecommerce platforms and can indicate:

- Repeat research or price-tracking behaviour

- Delayed decision-making across visits

- Potential automation (bots or scrapers)

The histogram above reaffirms the skewed nature of session frequency:

- The vast majority of users have fewer than 5 sessions

- A long tail extends toward hundreds of sessions, contributing to high variance

This heterogeneity reinforces the need to model each session independently rather than aggregating all actions per user. This aligns with findings by Van den Berg & Abbas (2022), who note that session-level embeddings preserve short-term intent granularity and avoid the averaging-out effect seen in user-level aggregation.`

const sessionLengthNarrative = `To further explore the typical behaviour, we visualised the distribution of session lengths through two histograms: a full-range plot and a zoomed-in version restricted to sessions with fewer than 50 events.

**Full Distribution:**
The distribution is heavily right-skewed, with the vast majority of sessions containing fewer than 10 events. The long tail reflects outlier sessions with unusually high interaction frequency.

**Zoomed View (0–50 Events):**
The zoomed-in view highlights that most user sessions are short, with peaks around 2–5 events. This aligns with established ecommerce research (Moe, 2003; Van den Berg & Abbas, 2022), which notes that a majority of users engage in brief, goal-oriented sessions, often terminating at the view or cart stage without purchasing.

These findings indicate substantial heterogeneity in user interaction depth. From a segmentation perspective, session length can help differentiate:

- Exploratory browsers (short sessions with few events)

- Deliberate shoppers (medium-length sessions)

- Power users or bots (very long sessions)

This variation becomes particularly useful during cluster interpretation in later stages. By linking cluster membership to average session length, we can identify latent behaviour patterns such as hesitation, decisiveness, or looped product discovery, thereby supporting actionable segmentation grounded in real behavioural flow.

This interpretation complements prior work that emphasises the importance of sequence structure over static features (Le & Mikolov, 2014; Grbovic & Cheng, 2018) and provides context for the choice of session-level token sequences in the embedding phase.`

const sessionConstructionNarrative = `The lag histograms reveal an extremely tight clustering near zero minutes for both transitions:

- Over 90% of add-to-cart and transaction events occur immediately after the preceding event. This reflects intent continuity—users who add items to their cart or purchase tend to act in a single behavioural session without prolonged gaps.

- A very small number of user-item paths demonstrate delayed decision-making, which may indicate deliberation, price sensitivity, or return visits—these are outliers but still relevant for nuanced cluster formation.

These patterns confirm the short-attention span nature of ecommerce behaviour and align with findings by Moe (2003) and Sakar et al. (2020), who argue that most conversions follow a fast funnel collapse once purchase intent crystallises.

**Relevance to Segmentation:**

- This motivates our choice of session-level modelling and justifies the use of 30-minute session gaps (Montgomery et al., 2004).

- Lag durations are stored for use in cluster profiling—e.g., clusters with longer cart-to-transaction times may reflect more hesitant or price-sensitive users.`

const timeGapStatsIntro = `**Summary statistics of Time Gaps:**`

const timeGapStatsNarrative = `These statistics illustrate a heavy-tailed distribution of time gaps. While the majority of user actions are clustered within a short time span, a small fraction of interactions are spaced days or even weeks apart. This supports the rationale behind adopting a 30-minute inactivity threshold for defining session boundaries, as proposed in prior literature (Montgomery et al., 2004; Moe, 2003; Google Analytics, 2023). The 75th percentile lies well within this range, ensuring that true behavioural sessions are captured without splitting meaningful flows or merging unrelated ones.

Such quantile-based diagnostics are especially critical in ecommerce datasets where repeated visits, multi-device access, and asynchronous behaviour can distort naive time assumptions. Understanding the actual time gap distribution strengthens the reliability of downstream sessionisation and embedding steps.`

const conversionFunnelNarrative = `- Views dominate the event landscape with over 2.66 million interactions, reflecting the exploratory nature of ecommerce browsing.

- Add-to-cart events number just ~69,000, indicating a substantial drop-off from intent to consideration.

- Transactions are the rarest action (~22,457), suggesting either high abandonment rates or price-sensitive/procrastinating user behaviour.

This steep funnel drop-off is consistent with prior behavioural research in online retail, where purchase journeys are highly non-linear and frequently interrupted (Gagliardelli et al., 2020; Moe, 2003). The high attrition from views to transactions also signals that platform optimisations could focus on improving mid-funnel engagement (e.g., better nudges for cart conversion, product page redesigns, or checkout simplification).

Additionally, these event-type ratios will later form the basis of funnel coverage analysis per session cluster. For instance, we may discover that certain clusters exhibit view-only behaviour while others proceed to transaction more often—offering behavioural signals that surpass demographic targeting.

By anchoring the segmentation in real funnel dynamics, we ensure that downstream clusters are not only data-driven but also aligned with measurable business objectives (Montgomery et al., 2004; Van den Berg & Abbas, 2022).`

const userSegmentationNarrative = `- ~71% of users are one-time visitors, a classic long-tail pattern seen in digital platforms (Gagliardelli et al., 2020). This tail suggests that a significant portion of traffic may consist of casual or bounce-prone users—challenging the value of aggregate metrics alone.

- Only 408 users (~0.03%) qualify as high-frequency participants, indicating extreme behavioural skew. These power users, although few, contribute disproportionately to total interactions—making them critical for personalised marketing, loyalty strategies, or retention efforts.

- The log-scaled distribution reveals the presence of noise, heavy tails, and outlier behaviour that might distort segmentation if not accounted for (Montgomery et al., 2004). This justifies the need for robust, non-parametric clustering techniques like HDBSCAN in later stages.

Such patterns validate our behavioural segmentation approach. Rather than treating users as uniformly distributed, we acknowledge the structural imbalance in engagement, which supports our decision to represent behaviour through session embeddings and not just user-level averages.

These findings also support cluster validation, as we can later compare whether specific clusters are dominated by transient users or engaged browsers—providing insight into lifecycle stages and funnel depth variance across clusters (Van den Berg & Abbas, 2022).`

const basketSizeNarrative = `The median basket size is 1, though some transactions exceed 500 items. This long-tail pattern
suggests opportunities for bundling, upselling, or flagging potential bot behaviour in edge cases.`

const categoryTrendsNarrative = `Certain categories dominate conversion counts. These may represent high-intent, high-margin, or well-promoted items,
providing direction for inventory focus or personalised recommendations.`

const eventLagNarrative = `Most actions occur in quick succession. However, longer lags also exist — suggesting either decision latency
or multi-session purchasing behaviour. This insight supports email trigger timing and session window tuning.`

const sunburstNarrative = "This sunburst presents the distribution of transactions by raw `categoryid`, rooted under a single logical parent.\n" +
	"No category hierarchy is assumed. This visual allows intuitive exploration of categorical concentration."

const executiveSummaryNarrative = `This dashboard provides a comprehensive behavioural breakdown of the Retail Rocket ecommerce dataset, structured around the customer's interaction journey.

Beginning with an analysis of event types, it becomes evident that online shopping behaviour is skewed towards browsing, with significantly fewer add-to-cart and purchase actions. This foundational imbalance is further reflected in user engagement, where most visitors exhibit minimal interaction while a small subset engages deeply and repeatedly. Session segmentation, based on data-driven time gap analysis, enables meaningful delineation of these behaviours into discrete user journeys.

Conversion funnel insights show pronounced drop-offs at early stages, underscoring the importance of improving mid-funnel engagement. Basket size distributions further reveal typical one-product purchases with rare but significant outliers, suggesting differing intent or purchase contexts.

User segmentation patterns follow a Pareto-like shape, validating the use of clustering techniques for high-impact targeting. Category and product trends identify key conversion-driving items, while lag analysis uncovers both impulsive and deliberative customer behaviours. Finally, the sunburst chart visualises the distribution of transactions across raw category IDs without inferring any hierarchy, ensuring analytical integrity.

Together, these findings build a cohesive behavioural profile of Rocket Retail users, guiding both strategic decisions and the development of downstream machine learning models.`

const referencesNarrative = `- Moe, W. W. (2003). Buying, searching, or browsing: Differentiating between online shoppers using in-store navigational clickstream. *Journal of Consumer Psychology*, 13(1-2), 29–39.
- Montgomery, A. L., Li, S., Srinivasan, K., & Liechty, J. (2004). Modeling online browsing and path analysis using clickstream data. *Marketing Science*, 23(4), 579–595.
- Sakar, C. O., Polat, S. O., Katircioglu, M., & Kocamaz, A. F. (2020). Time-aware user behavioural clustering in e-commerce using deep embeddings. *Knowledge-Based Systems*, 192, 105377.
- Van den Berg, D., & Abbas, K. (2022). Neural embeddings for sequential retail behaviour: Session-based customer segmentation in practice. *Information Systems Research*, 33(1), 204–225.`
