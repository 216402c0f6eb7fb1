package service

// Prompt templates for the recommendation composer. Tokens in braces are
// substituted with the profile snapshot's literal values.

const specificInstructionsTemplate = `CRITICAL REQUIREMENT: You MUST include these EXACT values from the user's profile in your recommendations:

- Age: {age} years old
- Gender: {gender}
- Weight: {weight_kg} kg
- Height: {height_cm} cm
- Body Fat: {body_fat}%
- Body Mass: {body_mass}kg
- Fitness Level: {fitness_level}
- Workout Frequency: {workout_frequency} days/week
- Workout Duration: {workout_duration} minutes
- Workout Intensity: {workout_intensity}/10
- Workout Type: {workout_type}
- Workout Equipment: {workout_equipment}
- Workout Style: {workout_style}
- Workout Goal: {workout_goal}
- Health Goal: {health_goal}
- Diet Preference: {diet_preference}
- Diet Allergies: {diet_allergies}
- Diet Restrictions: {diet_restrictions}
- Diet Preferences: {diet_preferences}
- Diet Goal: {diet_goal}
- Health Condition: {health_condition}

DO NOT use generic phrases like "based on your profile" or "according to your data."
INSTEAD, directly insert the actual values like "With your weight of {weight_kg}kg and body fat of {body_fat}%..."

You MUST mention at least 3-4 of these specific values in EACH recommendation category.
`

const outputContractTemplate = `
Create highly personalized fitness recommendations that demonstrate you have considered this SPECIFIC user's unique data.

IMPORTANT FORMATTING REQUIREMENTS:
- "frequency" and "duration" fields MUST be EXTREMELY short (max 15 characters)
- Example frequency: "3x/week" (not "3 times per week")
- Example duration: "45-60 min" (not "45-60 minutes")
- Keep these values brief and compact
- Move detailed explanations to the "description" field instead

Return your recommendations as a valid JSON object following this structure:
{
  "workoutRecommendations": [
    {
      "category": "Strength Training",
      "frequency": "KEEP VERY SHORT (e.g., '{workout_frequency}x/week')",
      "duration": "KEEP VERY SHORT (e.g., '{workout_duration} min')",
      "description": "Explicitly mention their weight of {weight_kg}kg and their workout goal of {workout_goal}",
      "focus": "Focus areas that directly reference their preferred workout type: {workout_type}"
    },
    {
      "category": "Cardio",
      "frequency": "KEEP VERY SHORT (e.g., '2-3x/week')",
      "duration": "KEEP VERY SHORT (e.g., '20-30 min')",
      "description": "Cardio recommendation that mentions their specific age of {age}, gender {gender}, and their {body_fat}% body fat",
      "intensity": "Intensity level appropriate for their {fitness_level} fitness level and {workout_intensity}/10 intensity preference"
    },
    {
      "category": "Recovery",
      "frequency": "KEEP VERY SHORT (e.g., 'Daily')",
      "duration": "KEEP VERY SHORT (e.g., '10-15 min')",
      "description": "Recovery approach that mentions their specific health goal of {health_goal} and health condition: {health_condition}"
    }
  ],
  "nutritionRecommendations": [
    {
      "category": "Protein Intake",
      "recommendation": "Specific protein recommendation that mentions their weight of {weight_kg}kg and body fat of {body_fat}%, considering their diet preference: {diet_preference}",
      "reasoning": "Reasoning that ties to their specific workout goal of {workout_goal}"
    },
    {
      "category": "Meal Timing",
      "recommendation": "Meal timing advice that references their {workout_frequency} days/week workout schedule and {workout_duration} minute sessions",
      "reasoning": "Explain why this timing works for someone with their specific {fitness_level} fitness level and diet goal: {diet_goal}"
    },
    {
      "category": "Hydration",
      "recommendation": "Specific hydration advice for someone weighing {weight_kg}kg with {body_fat}% body fat",
      "reasoning": "Connect hydration to their specific health goal of {health_goal}"
    }
  ],
  "lifestyleRecommendations": [
    {
      "category": "Sleep",
      "recommendation": "Sleep recommendation that mentions their age of {age} and occupation as {occupation}",
      "reasoning": "Connect sleep to their specific workout goal of {workout_goal}"
    },
    {
      "category": "Stress Management",
      "recommendation": "Stress management advice that references their occupation as {occupation} and their health condition: {health_condition}",
      "reasoning": "Explain how stress management helps with their specific health goal of {health_goal}"
    }
  ],
  "detailedWeeklySchedule": {
    "monday": {
      "focus": "FOCUS AREA (e.g., 'Chest & Triceps')",
      "description": "Short description referencing their weight of {weight_kg}kg and workout goal of {workout_goal}",
      "exercises": [
        {
          "name": "Specific exercise name",
          "sets": "3-4",
          "reps": "8-12",
          "intensity": "Moderate",
          "notes": "Brief note mentioning their {fitness_level} fitness level"
        },
        {
          "name": "Another specific exercise",
          "sets": "2-3",
          "reps": "10-15",
          "intensity": "Light-Moderate",
          "notes": "Note referencing their equipment: {workout_equipment}"
        },
        {
          "name": "Third specific exercise",
          "sets": "3",
          "reps": "Until failure",
          "intensity": "High",
          "notes": "Note mentioning their {workout_intensity}/10 intensity preference"
        }
      ],
      "cardio": {
        "type": "Specific cardio activity",
        "duration": "KEEP VERY SHORT (e.g., '15-20 min')",
        "intensity": "Moderate",
        "notes": "Brief cardio note referencing their age of {age}"
      }
    },
    "tuesday": {
      "focus": "FOCUS AREA (e.g., 'Recovery or Light Activity')",
      "description": "Recovery day description mentioning their health condition: {health_condition}",
      "exercises": [
        {
          "name": "Gentle recovery exercise",
          "sets": "1-2",
          "reps": "10-15",
          "intensity": "Light",
          "notes": "Brief note about recovery importance for their specific stats"
        },
        {
          "name": "Mobility work",
          "sets": "2",
          "reps": "10 per side",
          "intensity": "Very Light",
          "notes": "Note about flexibility for someone of their age ({age})"
        }
      ],
      "cardio": {
        "type": "Light recovery cardio",
        "duration": "KEEP VERY SHORT (e.g., '10-15 min')",
        "intensity": "Light",
        "notes": "Brief note about active recovery for their {fitness_level} level"
      }
    },
    "wednesday": {
      "focus": "FOCUS AREA (e.g., 'Back & Biceps')",
      "description": "Back workout description referencing their workout goal of {workout_goal}",
      "exercises": [
        {
          "name": "Specific back exercise",
          "sets": "3-4",
          "reps": "8-12",
          "intensity": "Moderate-High",
          "notes": "Brief note referencing their weight of {weight_kg}kg"
        },
        {
          "name": "Another back exercise",
          "sets": "3",
          "reps": "10-12",
          "intensity": "Moderate",
          "notes": "Note referencing their {fitness_level} fitness level"
        },
        {
          "name": "Bicep exercise",
          "sets": "3",
          "reps": "12-15",
          "intensity": "Moderate",
          "notes": "Note mentioning their workout style: {workout_style}"
        }
      ],
      "cardio": {
        "type": "Specific cardio activity",
        "duration": "KEEP VERY SHORT (e.g., '20 min')",
        "intensity": "Moderate",
        "notes": "Brief cardio note referencing their {body_fat}% body fat"
      }
    },
    "thursday": {
      "focus": "FOCUS AREA (e.g., 'Recovery or Flexibility')",
      "description": "Recovery description mentioning their health goal: {health_goal}",
      "exercises": [
        {
          "name": "Stretching routine",
          "sets": "1",
          "reps": "Hold 30s each",
          "intensity": "Light",
          "notes": "Brief note about flexibility benefits for their body type"
        },
        {
          "name": "Mobility exercise",
          "sets": "2",
          "reps": "10 per side",
          "intensity": "Light",
          "notes": "Note about joint health for their age of {age}"
        }
      ],
      "cardio": {
        "type": "Very light cardio",
        "duration": "KEEP VERY SHORT (e.g., '10 min')",
        "intensity": "Very Light",
        "notes": "Brief note about active recovery importance"
      }
    },
    "friday": {
      "focus": "FOCUS AREA (e.g., 'Legs & Shoulders')",
      "description": "Leg day description mentioning their weight of {weight_kg}kg and body mass of {body_mass}kg",
      "exercises": [
        {
          "name": "Compound leg exercise",
          "sets": "4",
          "reps": "8-10",
          "intensity": "High",
          "notes": "Brief note referencing their weight and fitness level"
        },
        {
          "name": "Isolation leg exercise",
          "sets": "3",
          "reps": "12-15",
          "intensity": "Moderate",
          "notes": "Note about leg development for their goals"
        },
        {
          "name": "Shoulder exercise",
          "sets": "3",
          "reps": "10-12",
          "intensity": "Moderate",
          "notes": "Note mentioning their workout equipment: {workout_equipment}"
        }
      ],
      "cardio": {
        "type": "Brief cardio finisher",
        "duration": "KEEP VERY SHORT (e.g., '10 min')",
        "intensity": "High",
        "notes": "Brief note about HIIT benefits for their {body_fat}% body fat"
      }
    },
    "saturday": {
      "focus": "FOCUS AREA (e.g., 'Full Body or Weak Points')",
      "description": "Full body session mentioning their {workout_frequency} days/week routine and {workout_duration} minute sessions",
      "exercises": [
        {
          "name": "Full body exercise 1",
          "sets": "3",
          "reps": "10-12",
          "intensity": "Moderate-High",
          "notes": "Brief note about compound movements for their goals"
        },
        {
          "name": "Targeted weakness exercise",
          "sets": "3",
          "reps": "12-15",
          "intensity": "Moderate",
          "notes": "Note about addressing specific needs based on their profile"
        },
        {
          "name": "Core-focused exercise",
          "sets": "3",
          "reps": "15-20",
          "intensity": "Moderate",
          "notes": "Note about core strength for their {body_fat}% body fat"
        }
      ],
      "cardio": {
        "type": "Enjoyable cardio activity",
        "duration": "KEEP VERY SHORT (e.g., '20-30 min')",
        "intensity": "Moderate",
        "notes": "Brief note about cardiovascular health for their age of {age}"
      }
    },
    "sunday": {
      "focus": "Rest & Recovery",
      "description": "Complete rest day approach for someone with their {fitness_level} fitness level and health condition: {health_condition}",
      "exercises": [
        {
          "name": "Light walking",
          "sets": "1",
          "reps": "N/A",
          "intensity": "Very Light",
          "notes": "Brief note about importance of complete recovery"
        },
        {
          "name": "Gentle stretching",
          "sets": "1",
          "reps": "Hold 30s each",
          "intensity": "Very Light",
          "notes": "Note about preparing body for next week's training"
        }
      ],
      "cardio": {
        "type": "None required",
        "duration": "0 min",
        "intensity": "Rest",
        "notes": "Brief note about recovery being essential to progress"
      }
    }
  }
}`

const systemPromptTemplate = `You are a fitness expert assistant creating HIGHLY PERSONALIZED recommendations that are SPECIFICALLY TAILORED to THIS INDIVIDUAL USER ONLY.

YOUR TOP PRIORITY is to create recommendations that are COMPLETELY UNIQUE to this specific user with ZERO generic advice:
- EVERY recommendation MUST directly incorporate MULTIPLE specific data points from this user's profile
- NEVER provide generic fitness advice that could apply to anyone
- ALWAYS reference their exact metrics in your recommendations

You MUST incorporate these EXACT user-specific values throughout ALL recommendations:
- Their exact weight of {weight_kg}kg - use this specific number, not a range or approximation
- Their specific body fat percentage of {body_fat}% - reference this exact percentage
- Their body mass of {body_mass}kg - use this specific measurement
- Their gender: {gender} - tailor exercises appropriately for their gender
- Their exact age: {age} - adjust recommendations for their specific age group
- Their specific health condition: {health_condition} - modify exercises to accommodate this condition

Their precise fitness goals and preferences:
- Workout goal: {workout_goal} - structure ALL recommendations to achieve THIS specific goal
- Health goal: {health_goal} - ensure recommendations support THIS specific health outcome
- Workout type preference: {workout_type} - prioritize these types of exercises
- Workout equipment: {workout_equipment} - ONLY suggest exercises using this equipment
- Workout style: {workout_style} - match the workout structure to this preference
- Workout frequency: {workout_frequency} days/week - design schedule for exactly this frequency
- Workout duration: {workout_duration} minutes - keep sessions within this timeframe
- Intensity preference: {workout_intensity}/10 - match intensity to this exact level

Their specific dietary needs:
- Diet preference: {diet_preference} - all nutrition advice must respect this preference
- Diet allergies: {diet_allergies} - never recommend foods that conflict with these
- Diet restrictions: {diet_restrictions} - all recommendations must accommodate these
- Diet preferences: {diet_preferences} - prioritize these food preferences
- Diet goal: {diet_goal} - align all nutrition advice with this specific goal

CRITICAL FORMATTING REQUIREMENT:
- The "frequency" and "duration" fields MUST be EXTREMELY SHORT (max 15 characters)
- Use abbreviated formats like "3x/week" instead of "3 times per week"
- Use "45-60 min" instead of "45-60 minutes"
- Put detailed explanations in the description field instead

YOUR DETAILED WEEKLY SCHEDULE MUST BE HYPER-PERSONALIZED:
- Create a realistic 7-day schedule SPECIFICALLY designed for this person's unique profile
- Adapt the exercise focus days based on THEIR preferred workout type: {workout_type}
- Include exact exercise names that are appropriate for THEIR fitness level: {fitness_level}
- Provide specific sets, reps, and intensity guidance tailored to THEIR capabilities
- Include ONLY exercises possible with THEIR available equipment: {workout_equipment}
- Ensure exercises align with THEIR specific workout goal: {workout_goal}
- Include appropriate rest days based on THEIR specific health condition: {health_condition}
- Set intensity levels appropriate for THEIR {workout_intensity}/10 intensity preference
- Duration of workouts should align with THEIR preferred {workout_duration} minutes
- Consider THEIR age of {age} when selecting exercise difficulty and recovery needs
- Account for THEIR weight of {weight_kg}kg and body fat of {body_fat}% when choosing exercises

NEVER use placeholders, generic terms, or one-size-fits-all advice.
EVERY single recommendation must be crafted EXCLUSIVELY for this specific individual.
IMPORTANT: Your response must be ONLY valid JSON that follows the requested structure.
`
