package catalog

func seedStages() []LearningStage {
	return []LearningStage{
		{ID: 1, Name: "Beginner", Level: 1, Description: "Python basics, syntax, and fundamental concepts", TotalLessons: 8, CompletedLessons: 8, IsUnlocked: true},
		{ID: 2, Name: "Intermediate", Level: 2, Description: "Object-oriented programming, data structures, and algorithms", TotalLessons: 12, CompletedLessons: 8, IsUnlocked: true},
		{ID: 3, Name: "Advanced", Level: 3, Description: "Advanced topics, frameworks, and professional development", TotalLessons: 15, CompletedLessons: 0, IsUnlocked: false},
	}
}

func seedLessons() []Lesson {
	return []Lesson{
		{
			ID:          1,
			StageID:     2,
			Title:       "Classes and Objects Fundamentals",
			Description: "Learn how to create classes, instantiate objects, and understand the relationship between them.",
			Content:     classesContent,
			Duration:    25,
			Order:       1,
			IsCompleted: true,
		},
		{
			ID:          2,
			StageID:     2,
			Title:       "Methods and Attributes",
			Description: "Understand instance methods, class methods, static methods, and different types of attributes.",
			Content:     methodsContent,
			Duration:    30,
			Order:       2,
		},
		{
			ID:          3,
			StageID:     2,
			Title:       "Inheritance and Polymorphism",
			Description: "Explore inheritance relationships, method overriding, and polymorphic behavior in Python.",
			Content:     inheritanceContent,
			Duration:    35,
			Order:       3,
		},
	}
}

func seedProblems() []Problem {
	return []Problem{
		{
			ID:          1,
			StageID:     2,
			Title:       "Two Sum",
			Description: "Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target.",
			Difficulty:  Easy,
			Tags:        []string{"Array", "Hash Table"},
			Source:      "LeetCode",
			SourceURL:   "https://leetcode.com/problems/two-sum/",
			Starter:     twoSumStarter,
			IsCompleted: true,
		},
		{
			ID:          2,
			StageID:     2,
			Title:       "Valid Parentheses",
			Description: "Given a string s containing just the characters '(', ')', '{', '}', '[' and ']', determine if the input string is valid.",
			Difficulty:  Easy,
			Tags:        []string{"String", "Stack"},
			Source:      "LeetCode",
			SourceURL:   "https://leetcode.com/problems/valid-parentheses/",
			Starter:     validParenthesesStarter,
		},
		{
			ID:          3,
			StageID:     2,
			Title:       "Longest Substring Without Repeating Characters",
			Description: "Given a string s, find the length of the longest substring without repeating characters.",
			Difficulty:  Medium,
			Tags:        []string{"Hash Table", "Sliding Window"},
			Source:      "LeetCode",
			SourceURL:   "https://leetcode.com/problems/longest-substring-without-repeating-characters/",
			Starter:     longestSubstringStarter,
		},
	}
}

func seedProjects() []Project {
	return []Project{
		{
			ID:             1,
			StageID:        2,
			Title:          "Object-Oriented Todo App",
			Description:    "Build a todo application using classes for Task, TodoList, and User management with file persistence.",
			Difficulty:     Beginner,
			EstimatedHours: 2,
			Skills:         []string{"Classes", "File I/O", "Data Management"},
		},
		{
			ID:             2,
			StageID:        2,
			Title:          "Banking System Simulator",
			Description:    "Create a banking system with Account, SavingsAccount, and CheckingAccount classes demonstrating inheritance.",
			Difficulty:     Intermediate,
			EstimatedHours: 4,
			Skills:         []string{"Inheritance", "Polymorphism", "Error Handling"},
		},
	}
}

func seedResources() []Resource {
	return []Resource{
		{ID: 1, StageID: 2, Title: "Python Official Documentation", Description: "The language reference and standard library docs.", URL: "https://docs.python.org/3/", Kind: KindDocumentation, IsFree: true},
		{ID: 2, StageID: 2, Title: "Real Python Tutorials", Description: "Practical tutorials on classes, inheritance and more.", URL: "https://realpython.com/", Kind: KindArticle, IsFree: true},
		{ID: 3, StageID: 2, Title: "Python.org Beginner's Guide", Description: "Where to start when learning Python.", URL: "https://www.python.org/about/gettingstarted/", Kind: KindDocumentation, IsFree: true},
		{ID: 4, StageID: 2, Title: "Python Crash Course", Description: "Full-length introductory video course.", URL: "https://www.youtube.com/watch?v=JJmcL1N2KQs", Kind: KindVideo, IsFree: true},
		{ID: 5, StageID: 2, Title: "Object-Oriented Programming", Description: "Video walkthrough of classes and objects in Python.", URL: "https://www.youtube.com/watch?v=Ej_02ICOIgs", Kind: KindVideo, IsFree: true},
	}
}

func seedModules() []Module {
	return []Module{
		{StageID: 2, Title: "Object-Oriented Programming", Summary: "Master classes, objects, inheritance, and polymorphism in Python", EstimatedHours: 4},
	}
}

const classesContent = `# Classes and Objects in Python

## What are Classes?
A class is a blueprint for creating objects. It defines the attributes and methods that objects of that type will have.

## Creating a Class
~~~python
class Dog:
    def __init__(self, name, breed):
        self.name = name
        self.breed = breed

    def bark(self):
        return f"{self.name} says Woof!"

# Creating objects
my_dog = Dog("Buddy", "Golden Retriever")
print(my_dog.bark())  # Output: Buddy says Woof!
~~~

## Key Concepts
- **Class**: Blueprint for objects
- **Object**: Instance of a class
- **Attributes**: Variables that belong to an object
- **Methods**: Functions that belong to a class
`

const methodsContent = `# Methods and Attributes

## Instance Methods
Methods that operate on instance data:
~~~python
class Circle:
    def __init__(self, radius):
        self.radius = radius

    def area(self):
        return 3.14159 * self.radius ** 2
~~~

## Class Methods
Methods that operate on class data:
~~~python
class Counter:
    count = 0

    @classmethod
    def increment(cls):
        cls.count += 1
~~~

## Static Methods
Methods that don't access instance or class data:
~~~python
class MathUtils:
    @staticmethod
    def add(x, y):
        return x + y
~~~
`

const inheritanceContent = `# Inheritance and Polymorphism

## Inheritance
Create new classes based on existing ones:
~~~python
class Animal:
    def __init__(self, name):
        self.name = name

    def speak(self):
        pass

class Dog(Animal):
    def speak(self):
        return f"{self.name} says Woof!"

class Cat(Animal):
    def speak(self):
        return f"{self.name} says Meow!"
~~~

## Polymorphism
Same interface, different implementations:
~~~python
animals = [Dog("Buddy"), Cat("Whiskers")]
for animal in animals:
    print(animal.speak())
~~~
`

const twoSumStarter = `# Write your solution here
class Solution:
    def twoSum(self, nums, target):
        # Your code here
        pass

# Test your solution
solution = Solution()
nums = [2, 7, 11, 15]
target = 9
result = solution.twoSum(nums, target)
print(f"Result: {result}")
`

const validParenthesesStarter = `# Write your solution here
class Solution:
    def isValid(self, s):
        # Your code here
        pass

# Test your solution
solution = Solution()
print(f"Result: {solution.isValid('()[]{}')}")
`

const longestSubstringStarter = `# Write your solution here
class Solution:
    def lengthOfLongestSubstring(self, s):
        # Your code here
        pass

# Test your solution
solution = Solution()
print(f"Result: {solution.lengthOfLongestSubstring('abcabcbb')}")
`
